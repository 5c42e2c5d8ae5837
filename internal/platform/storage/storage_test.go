package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	valid := map[string]string{
		"products/p1/images/a.jpg":    "products/p1/images/a.jpg",
		"products//p1/./images/a.jpg": "products/p1/images/a.jpg",
		`products\p1\a.pdf`:           "products/p1/a.pdf",
	}
	for in, want := range valid {
		got, err := CleanKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "/etc/passwd", "../secret", "products/../../x", "."} {
		_, err := CleanKey(in)
		assert.ErrorIs(t, err, ErrInvalidKey, in)
	}
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocal(root)
	require.NoError(t, err)

	n, err := store.Save(ctx, "products/p1/images/i1.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.EqualValues(t, 9, n)

	_, err = os.Stat(filepath.Join(root, "products", "p1", "images", "i1.png"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, "products/p1/images/i1.png")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))

	require.NoError(t, store.Delete(ctx, "products/p1/images/i1.png"))
	require.NoError(t, store.Delete(ctx, "products/p1/images/i1.png"))

	_, err = store.Open(ctx, "products/p1/images/i1.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Save(ctx, "../escape.txt", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Save(ctx, "a/b.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b.txt"}, store.Keys())

	require.NoError(t, store.Delete(ctx, "a/b.txt"))
	_, err = store.Open(ctx, "a/b.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), Options{Driver: "ftp"})
	assert.Error(t, err)
}
