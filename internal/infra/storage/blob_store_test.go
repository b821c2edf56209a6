package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	domainerrors "localguide/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func newDirStore(t *testing.T) (string, *blobImageStore) {
	t.Helper()

	base := t.TempDir()
	bucket, err := fileblob.OpenBucket(base, nil)
	require.NoError(t, err)

	store := NewBlobImageStore(base, bucket, slog.Default()).(*blobImageStore)
	t.Cleanup(func() { _ = store.Close() })

	return base, store
}

func TestBlobImageStore_ReadFromDirectory(t *testing.T) {
	base, store := newDirStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "spots"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "spots", "cover.PNG"), []byte("png-bytes"), 0o600))

	key, err := store.Resolve("spots/cover.PNG")
	require.NoError(t, err)

	file, err := store.Read(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), file.Data)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "spots/cover.PNG", file.Key)
}

func TestBlobImageStore_ReadMissing(t *testing.T) {
	_, store := newDirStore(t)

	file, err := store.Read(context.Background(), "missing.jpg")
	assert.Nil(t, file)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestBlobImageStore_ResolveRejectsTraversal(t *testing.T) {
	_, store := newDirStore(t)

	key, err := store.Resolve("../../etc/passwd")
	assert.Empty(t, key)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPath)
}

func TestBlobImageStore_ReadFromBucket(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.WriteAll(ctx, "landmarks/tower.webp", []byte("webp"), &blob.WriterOptions{}))

	store := NewBlobImageStore(t.TempDir(), bucket, slog.Default())
	defer store.Close()

	file, err := store.Read(ctx, "landmarks/tower.webp")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", file.ContentType)
	assert.Equal(t, []byte("webp"), file.Data)
}
