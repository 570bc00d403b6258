package service

import "errors"

var (
	// ErrSecretValidation marks a persisted family secret with the wrong
	// decoded length. Recovered locally: the value is discarded and
	// regenerated.
	ErrSecretValidation = errors.New("persisted family secret failed validation")

	// ErrSecretStorage marks the secure storage as unavailable. Fatal to
	// the current operation and surfaced to the caller; never retried
	// automatically, and never papered over with an unpersisted secret.
	ErrSecretStorage = errors.New("secure storage unavailable")

	// ErrDecryptionFailed marks an authentication-tag mismatch or
	// malformed ciphertext/iv. Recovered per message with a placeholder;
	// when universal across a batch, by the one-shot secret regeneration.
	ErrDecryptionFailed = errors.New("message decryption failed")

	// ErrDerivation marks unsupported room-key derivation inputs. Should
	// not occur in normal operation; treated as a programmer error.
	ErrDerivation = errors.New("room key derivation failed")
)
