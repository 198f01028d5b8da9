// Package cli provides the interactive stackpick command-line client.
//
// It wires configuration, the local SQLite catalog cache, the gRPC catalog
// client and a REPL that drives the stack selection wizard. The catalog is
// taken from the cache when present, synced from the server otherwise, and
// falls back to the built-in catalog so the wizard always has something to
// offer.
//
// A background watcher pings the server and switches between online and
// offline modes. Offline, every wizard command keeps working; only sync and
// download need the server.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
