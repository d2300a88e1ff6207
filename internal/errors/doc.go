// Package errors provides the tagged error variants used across vanext.
//
// Every failure surfaced to an API client or a CLI user is an *Error with a
// Kind:
//   - validation: client input malformed, answered with 400 and issues
//   - not_found: resource or route absent, answered with 404
//   - internal: anything unexpected, answered with 500 and no detail
//   - config, cli: tooling failures printed by the vanext command
//
// # Error Codes
//
// Each error has a stable code (e.g., "E104") mapping to a kind, a short
// message and an optional longer explanation.
//
// # Usage
//
//	err := errors.New(errors.CodeConfigInvalid).
//	    WithDetail("api.port must be between 1 and 65535").
//	    WithSuggestion("Set API_PORT or fix vanext.json")
//
//	errors.PrintError(err)
package errors
