// Package chat relays questions about a document to the backend and keeps
// the in-memory transcript of one viewing session.
package chat
