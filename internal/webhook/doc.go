// Package webhook is the transport client for the automation backend.
//
// The backend exposes a handful of fixed POST endpoints ("webhooks") and is
// treated as an opaque collaborator: replies are returned as raw text for
// the content layer to interpret. Every call attaches a Basic-auth header
// from injected configuration and is made exactly once, with no retry and
// no client-imposed timeout.
package webhook
