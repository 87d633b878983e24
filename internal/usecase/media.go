package usecase

import "io"

// MediaUpload carries one uploaded asset from the delivery layer. The body is
// streamed to the object store before any record referencing it is persisted.
type MediaUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}
