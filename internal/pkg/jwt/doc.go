// Package jwt is helpers for working with JSON Web Tokens (JWT).
//
// It includes:
//   - A typed Claims wrapper (registered claims + identity, display name, role).
//   - A symmetric HS512 implementation for generating and verifying tokens.
//   - Context helpers for storing and retrieving authenticated claims.
//
// Claims only ever enter a request context after the signature and expiry
// checks have passed; there is no partially trusted state.
package jwt
