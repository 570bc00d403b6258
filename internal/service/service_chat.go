package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/adapter"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

// batchState is the explicit state machine a history load moves through.
// The single-retry guarantee lives in the transitions: Retrying always
// moves to Done, never back to AllFailed, so a genuinely corrupt stream
// cannot trap the client in a regeneration loop.
type batchState int

const (
	stateDecrypting batchState = iota
	stateAllFailed
	stateRegenerating
	stateRetrying
	stateDone
)

type chatCryptoService struct {
	secrets FamilySecretService
	keys    RoomKeyService
	cipher  MessageCipherService
	server  adapter.ChatServerAdapter
	log     *logger.Logger

	// outcomes is the per-room conversation view, keyed by room id then
	// message id. Reloads merge into it instead of replacing it, which is
	// what keeps an already-readable message readable across a transient
	// failure.
	mu       sync.Mutex
	outcomes map[int64]map[int64]models.DecryptionOutcome
}

// NewChatCryptoService constructs the [ChatCryptoService] coordinator.
func NewChatCryptoService(
	secrets FamilySecretService,
	keys RoomKeyService,
	cipher MessageCipherService,
	server adapter.ChatServerAdapter,
	log *logger.Logger,
) ChatCryptoService {
	return &chatCryptoService{
		secrets:  secrets,
		keys:     keys,
		cipher:   cipher,
		server:   server,
		log:      log,
		outcomes: make(map[int64]map[int64]models.DecryptionOutcome),
	}
}

// roomKey resolves the room key through the secret store and key cache.
func (s *chatCryptoService) roomKey(ctx context.Context, roomID, familyID int64) (crypto.RoomKey, error) {
	secret, err := s.secrets.GetOrCreateSecret(ctx, familyID, false)
	if err != nil {
		return nil, err
	}
	return s.keys.GetOrDerive(ctx, roomID, familyID, secret)
}

// PrepareRoom implements [ChatCryptoService].
func (s *chatCryptoService) PrepareRoom(ctx context.Context, roomID, familyID int64) error {
	_, err := s.roomKey(ctx, roomID, familyID)
	return err
}

// EncryptMessage implements [ChatCryptoService].
func (s *chatCryptoService) EncryptMessage(ctx context.Context, roomID, familyID int64, plaintext string) (models.EncryptedPayload, error) {
	key, err := s.roomKey(ctx, roomID, familyID)
	if err != nil {
		return models.EncryptedPayload{}, err
	}
	return s.cipher.Encrypt(plaintext, key)
}

// SendMessage implements [ChatCryptoService].
func (s *chatCryptoService) SendMessage(ctx context.Context, roomID, familyID int64, plaintext string) (models.Message, error) {
	payload, err := s.EncryptMessage(ctx, roomID, familyID, plaintext)
	if err != nil {
		return models.Message{}, err
	}

	msg, err := s.server.SendMessage(ctx, roomID, payload)
	if err != nil {
		return models.Message{}, fmt.Errorf("post message: %w", err)
	}

	// The sender already knows the plaintext; record it so a later reload
	// can never regress this message to a placeholder.
	s.record(roomID, models.DecryptionOutcome{
		MessageID: msg.ID,
		Sender:    msg.SenderUsername,
		Text:      plaintext,
		Decrypted: true,
		CreatedAt: msg.CreatedAt,
	})

	return msg, nil
}

// HandleIncoming implements [ChatCryptoService].
func (s *chatCryptoService) HandleIncoming(ctx context.Context, familyID int64, msg models.Message) models.DecryptionOutcome {
	outcome := models.DecryptionOutcome{
		MessageID: msg.ID,
		Sender:    msg.SenderUsername,
		CreatedAt: msg.CreatedAt,
	}

	key, err := s.roomKey(ctx, msg.Room, familyID)
	if err != nil {
		s.log.Error().Err(err).Int64("room_id", msg.Room).Msg("no room key for incoming message")
		s.record(msg.Room, outcome)
		return outcome
	}

	text, err := s.cipher.Decrypt(msg.EncryptedBody(), key)
	if err != nil {
		s.log.Warn().Err(err).Int64("message_id", msg.ID).Msg("incoming message failed to decrypt")
		s.record(msg.Room, outcome)
		return outcome
	}

	outcome.Text = text
	outcome.Decrypted = true
	s.record(msg.Room, outcome)
	return outcome
}

// LoadRoom implements [ChatCryptoService].
func (s *chatCryptoService) LoadRoom(ctx context.Context, roomID, familyID int64) ([]models.DecryptionOutcome, error) {
	messages, err := s.server.FetchRoomMessages(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("fetch room %d: %w", roomID, err)
	}

	fresh, err := s.decryptBatch(ctx, roomID, familyID, messages)
	if err != nil {
		return nil, err
	}

	return s.merge(roomID, fresh), nil
}

// decryptBatch runs the batch state machine: bulk decrypt, all-failed
// detection, one forced regeneration, one retry, done. Message order is
// preserved in the output relative to the input.
func (s *chatCryptoService) decryptBatch(ctx context.Context, roomID, familyID int64, messages []models.Message) ([]models.DecryptionOutcome, error) {
	key, err := s.roomKey(ctx, roomID, familyID)
	if err != nil {
		return nil, err
	}

	var outcomes []models.DecryptionOutcome
	var failed int

	for state := stateDecrypting; state != stateDone; {
		switch state {
		case stateDecrypting:
			outcomes, failed = s.decryptAll(messages, key)
			if len(messages) > 0 && failed == len(messages) {
				state = stateAllFailed
			} else {
				state = stateDone
			}

		case stateAllFailed:
			// Universal failure means the shared secret diverged, not
			// that every message is independently corrupt.
			s.log.Warn().
				Int64("room_id", roomID).
				Int64("family_id", familyID).
				Int("batch_size", len(messages)).
				Msg("entire batch failed to decrypt, regenerating family secret")
			state = stateRegenerating

		case stateRegenerating:
			secret, err := s.secrets.GetOrCreateSecret(ctx, familyID, true)
			if err != nil {
				return nil, fmt.Errorf("regenerate family secret: %w", err)
			}
			s.keys.EvictFamily(familyID)

			key, err = s.keys.GetOrDerive(ctx, roomID, familyID, secret)
			if err != nil {
				return nil, err
			}
			state = stateRetrying

		case stateRetrying:
			// Exactly one retry; its result is terminal either way.
			outcomes, failed = s.decryptAll(messages, key)
			if failed == len(messages) && len(messages) > 0 {
				s.log.Error().
					Int64("room_id", roomID).
					Msg("batch still undecryptable after secret regeneration")
			}
			state = stateDone
		}
	}

	return outcomes, nil
}

// decryptAll attempts every message in the batch individually; a failure
// becomes a placeholder outcome and never aborts the rest of the batch.
func (s *chatCryptoService) decryptAll(messages []models.Message, key crypto.RoomKey) ([]models.DecryptionOutcome, int) {
	outcomes := make([]models.DecryptionOutcome, 0, len(messages))
	failed := 0

	for _, msg := range messages {
		outcome := models.DecryptionOutcome{
			MessageID: msg.ID,
			Sender:    msg.SenderUsername,
			CreatedAt: msg.CreatedAt,
		}

		text, err := s.cipher.Decrypt(msg.EncryptedBody(), key)
		if err != nil {
			failed++
		} else {
			outcome.Text = text
			outcome.Decrypted = true
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, failed
}

// record stores one outcome in the room view, preferring an existing
// successful outcome over a fresh failure for the same message.
func (s *chatCryptoService) record(roomID int64, outcome models.DecryptionOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(roomID, outcome)
}

func (s *chatCryptoService) recordLocked(roomID int64, outcome models.DecryptionOutcome) {
	room, ok := s.outcomes[roomID]
	if !ok {
		room = make(map[int64]models.DecryptionOutcome)
		s.outcomes[roomID] = room
	}

	if existing, ok := room[outcome.MessageID]; ok && existing.Decrypted && !outcome.Decrypted {
		return
	}
	room[outcome.MessageID] = outcome
}

// merge folds a fresh batch into the room view and returns the batch in
// its original order with any preserved prior successes substituted in.
func (s *chatCryptoService) merge(roomID int64, fresh []models.DecryptionOutcome) []models.DecryptionOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, outcome := range fresh {
		s.recordLocked(roomID, outcome)
	}

	merged := make([]models.DecryptionOutcome, 0, len(fresh))
	for _, outcome := range fresh {
		merged = append(merged, s.outcomes[roomID][outcome.MessageID])
	}
	return merged
}
