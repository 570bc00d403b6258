// Package adapter provides the transport-layer boundary between the crypto
// core and the family-organizer backend.
//
// The primary abstraction is [ChatServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPChatAdapter]); the backend only ever
// sees ciphertext, so nothing in this package touches keys or plaintext.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_adapter_mock.go -package=mock

// ChatServerAdapter defines transport-agnostic communication with the chat
// backend. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ChatServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// Login authenticates with the backend. On success it stores the
	// returned bearer token via SetToken and returns the authenticated
	// user id parsed from the token.
	Login(ctx context.Context, email, password string) (int64, error)

	// FetchRoomMessages retrieves the full message history of a room in
	// chronological order. Bodies stay encrypted; the adapter passes
	// ciphertext, iv and sender metadata through untouched.
	FetchRoomMessages(ctx context.Context, roomID int64) ([]models.Message, error)

	// SendMessage posts one encrypted payload to a room and returns the
	// stored message as the backend echoes it back (with id, sender and
	// created_at filled in).
	SendMessage(ctx context.Context, roomID int64, payload models.EncryptedPayload) (models.Message, error)
}
