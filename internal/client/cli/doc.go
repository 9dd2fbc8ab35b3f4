// Package cli provides the interactive Mini-Reddit command-line client.
//
// It wires configuration and the REST API client into a REPL: read a command,
// call the API, print the result. A background watcher probes the server and
// shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
