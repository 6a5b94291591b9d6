// Package storage implements the image store on top of a gocloud.dev blob
// bucket backed by the local filesystem.
package storage

import (
	"context"
	"io"
	"os"
	"strings"

	"pawsconnect/config"
	"pawsconnect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the image bucket under the configured upload directory.
func New(params Params) (service.ImageStore, error) {
	dir := params.Config.Upload.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Upload.BaseURL, "/"),
	}, nil
}

// Save streams the image into the bucket and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, filename, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Closing discards the partially written blob.
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image")
	}

	return s.baseURL + "/static/pet_images/" + filename, nil
}

// Open returns a reader for a stored image.
func (s *blobImageStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, filename, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}

	return r, nil
}

// Delete removes a stored image.
func (s *blobImageStore) Delete(ctx context.Context, filename string) error {
	if err := s.bucket.Delete(ctx, filename); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
