// Package document uploads documents and retrieves their content and history.
// All operations require a stored session; the username digest identifies the
// owner on the backend.
package document
