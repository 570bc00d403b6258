package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_provider_mock.go -package=mock

// RoomKeySize is the length in bytes of a derived room key (AES-256).
const RoomKeySize = 32

// IVSize is the length in bytes of the GCM nonce generated per encryption.
const IVSize = 12

// RoomKey is a 256-bit symmetric key derived per (room, family) pair.
// It is never persisted; it is recomputed from the family secret whenever
// it is absent from the in-memory cache.
type RoomKey []byte

// CipherProvider wraps the authenticated symmetric cipher and the secure
// random source behind one interface so the rest of the application never
// touches a concrete crypto backend. Exactly one implementation is selected
// at composition time ([NewGCMProvider]); business logic must never branch
// on the backend.
type CipherProvider interface {
	// Encrypt seals plaintext with key under a fresh random 96-bit iv and
	// returns the raw ciphertext (authentication tag appended) together
	// with the iv that was used. The iv must never be reused with the same
	// key; callers get a new one on every call.
	Encrypt(plaintext, key []byte) (ciphertext, iv []byte, err error)

	// Decrypt opens ciphertext with key and iv. It is all-or-nothing: on an
	// authentication-tag mismatch or malformed input it returns an error
	// and never partial plaintext.
	Decrypt(ciphertext, iv, key []byte) ([]byte, error)

	// RandomBytes returns n bytes from the OS CSPRNG.
	RandomBytes(n int) ([]byte, error)

	// Digest returns the SHA-256 digest of data.
	Digest(data []byte) []byte
}

// KeyDeriver stretches a family secret plus a room-scoped salt into a
// room key. Derivation must be deterministic: identical inputs yield
// byte-identical key material on every device, which is what lets all
// family devices converge on the same key without a key-exchange round
// trip.
type KeyDeriver interface {
	DeriveRoomKey(secret []byte, roomID, familyID int64) (RoomKey, error)
}
