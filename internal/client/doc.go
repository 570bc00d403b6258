// Package client implements the embeddable messaging-client runtime.
//
// It wires configuration, the crypto core, device-local secure storage, the
// backend transport and background room refresh into a single [App] with a
// process lifecycle. Host applications construct an App, log in, enter a
// room and exchange messages; everything below the App boundary deals in
// ciphertext only.
package client
