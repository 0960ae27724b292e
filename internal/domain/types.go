package domain

// DocumentName identifies an uploaded document on the backend. The backend
// keys documents by the plain name, not a digest.
type DocumentName string

// String returns the string form of the document name.
func (n DocumentName) String() string { return string(n) }

// DocumentContent is one document rendered for side-by-side display.
// Either half may hold a placeholder when the backend had nothing usable.
type DocumentContent struct {
	Original   string
	Translated string
}

// ChatMessage is a single entry in a document conversation.
type ChatMessage struct {
	Text     string
	FromUser bool
}

// Response is the normalised outcome of one webhook call.
//
// OK is true iff Status is in [200,300). Body is the raw reply text; the
// backend's content-type is not trusted, so callers interpret Body themselves.
type Response struct {
	OK     bool
	Status int
	Body   string
}

// FilePart is the single binary field of a multipart upload.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string // transport default applies when empty
	Content     []byte
}
