package service

import (
	"context"
	"io"
)

// ImageStore stores uploaded pet and listing images and serves them back.
// Filenames are expected to be pre-sanitized, collision-resistant names;
// the store never interprets them beyond using them as keys.
type ImageStore interface {
	// Save writes the image under the given filename and returns the public
	// URL it will be served from.
	Save(ctx context.Context, filename string, r io.Reader) (url string, err error)

	// Open returns a reader for a previously saved image.
	Open(ctx context.Context, filename string) (io.ReadCloser, error)

	// Delete removes a saved image. Used to undo an upload when the
	// accompanying database write fails.
	Delete(ctx context.Context, filename string) error
}
