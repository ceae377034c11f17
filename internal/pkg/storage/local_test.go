package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	stored, err := store.Upload(context.Background(), strings.NewReader("png-bytes"), "logos/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "logos/a.png", stored)

	content, err := os.ReadFile(filepath.Join(dir, "logos", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	assert.Equal(t, "http://localhost:8080/uploads/logos/a.png", store.URL(stored))

	require.NoError(t, store.Delete(context.Background(), stored))
	require.NoError(t, store.Delete(context.Background(), stored))
	_, err = os.Stat(filepath.Join(dir, "logos", "a.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)
}
