package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded media assets in a durable external object
// store. A catalog record must never be persisted with a reference to a
// non-durable location, so uploads always complete before the record write.
type MediaStorage interface {
	// Upload streams one asset into the object store under the given key and
	// returns the durable URL the stored record should reference.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
