// Package proto holds the stackpick.v1 catalog contract and its generated
// gRPC stubs.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative catalog.proto
