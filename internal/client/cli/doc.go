// Package cli provides the interactive hostctl command-line client.
//
// It wires configuration, the local session database, API services, and an
// interactive REPL. Typical flow: wait briefly for the backend, prompt for
// credentials if no session is stored, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Login / Logout with a persisted session that survives restarts
//   - Instance list/detail and power actions
//   - Plans, orders and gift-code redemption
//   - Support tickets
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
