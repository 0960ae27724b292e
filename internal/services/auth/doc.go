// Package auth exchanges credentials with the backend and owns the local
// session slot. Credentials are digested immediately before each request and
// never stored; only the plaintext username of a confirmed login is persisted.
package auth
