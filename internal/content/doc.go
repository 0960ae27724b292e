// Package content interprets raw webhook reply bodies.
//
// The backend does not reliably speak JSON: a document reply may be a JSON
// object, free text with translation markers, or plain text. The interpreter
// resolves an explicit ordered fallback chain over those shapes and never
// fails; at worst a half of the document degrades to a placeholder.
package content
