package common

// RequestIDHeaderName is the gRPC metadata key that carries the request id
// between the CLI and the server.
const RequestIDHeaderName = "x-request-id"

// ArchiveKeyPrefix is the object storage prefix under which downloadable
// template archives are kept, one "<slug>.zip" per template.
const ArchiveKeyPrefix = "templates/"
