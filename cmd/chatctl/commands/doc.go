// Package commands defines the chatctl command tree.
//
// chatctl is a diagnostics and development tool for the encrypted messaging
// core: it can inspect and rotate family secrets, encrypt and decrypt single
// payloads, and exchange messages with a running backend. It is not the
// product UI.
package commands
