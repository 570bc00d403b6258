package models

import "time"

// EncryptedPayload is the wire shape of one encrypted message body.
// Both fields are standard-base64 strings: Ciphertext carries the
// AES-256-GCM output with the authentication tag appended (default GCM
// behaviour, no separate tag field), IV carries the 96-bit nonce that was
// generated for this one encryption. The backend stores and relays both
// without ever being able to read them.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
}

// Message is one chat message as the backend relays it over REST and
// WebSocket. The body is carried in Ciphertext/IV; everything else is
// metadata the crypto core passes through without interpreting.
type Message struct {
	ID             int64     `json:"id"`
	Room           int64     `json:"room"`
	Sender         int64     `json:"sender"`
	SenderUsername string    `json:"sender_username"`
	Ciphertext     string    `json:"ciphertext"`
	IV             string    `json:"iv"`
	CreatedAt      time.Time `json:"created_at"`
	IsEdited       bool      `json:"is_edited"`
}

// EncryptedBody returns the message body as an [EncryptedPayload].
func (m Message) EncryptedBody() EncryptedPayload {
	return EncryptedPayload{Ciphertext: m.Ciphertext, IV: m.IV}
}

// DecryptionOutcome is the render-ready result of decrypting one message:
// either the plaintext or a typed failure that still names the sender so
// the conversation view can show a placeholder instead of crashing.
type DecryptionOutcome struct {
	MessageID int64
	Sender    string
	Text      string
	Decrypted bool
	CreatedAt time.Time
}

// DisplayText returns the string a conversation view should render for
// this outcome. Failures degrade to a per-message placeholder; the core
// never synthesizes plaintext.
func (o DecryptionOutcome) DisplayText() string {
	if o.Decrypted {
		return o.Text
	}
	return "Unable to decrypt message from " + o.Sender
}
