// Package client contains client-side building blocks for the stackpick CLI.
//
// # Overview
//
// The package provides:
//  1. The Client interface used by the CLI to reach the catalog server:
//     Ping, ListTemplates and GetDownloadURL.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     tags every call with an x-request-id, and maps gRPC status codes to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite cache that keeps the last catalog for offline use.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrNotFound, ErrLocalDataNotAvailable.
package client
