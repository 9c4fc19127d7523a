//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: declared in go.mod's tool block,
//   run with `go tool goose -dir migrations postgres "$DATABASE_DSN" status`.
// - github.com/matryer/moq: regenerates the *_mock_test.go files from the
//   go:generate directives next to each service.
