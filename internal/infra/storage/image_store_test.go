package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStore(t *testing.T) *blobImageStore {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return &blobImageStore{bucket: bucket, baseURL: "http://localhost:8080"}
}

func TestImageStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Save(ctx, "pet_1_abc.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/static/pet_images/pet_1_abc.png", url)

	reader, err := store.Open(ctx, "pet_1_abc.png")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestImageStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, "pet_1_gone.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "pet_1_gone.jpg"))

	_, err = store.Open(ctx, "pet_1_gone.jpg")
	assert.Error(t, err)
}

func TestImageStore_OpenMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(context.Background(), "never-saved.png")
	assert.Error(t, err)
}
