// Package store provides file-based persistence for the client's session.
//
// The only persisted state is a single-slot JSON file holding the plaintext
// username of the logged-in user, kept under the app's home directory.
// Methods are concurrency-safe via internal locking.
package store
