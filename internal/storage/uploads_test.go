package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uta-gremial/reclamos-service/internal/config"
	"github.com/uta-gremial/reclamos-service/internal/storage"
)

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewUploadStore(config.UploadsConfig{Dir: dir, URLPrefix: "/uploads/"})
	assert.NoError(t, err)

	url, err := store.Save("informe final.pdf", strings.NewReader("contenido"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".pdf"), url)

	filename := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filename))
	assert.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestSave_DistinctNamesForSameOriginal(t *testing.T) {
	store, err := storage.NewUploadStore(config.UploadsConfig{Dir: t.TempDir(), URLPrefix: "/uploads"})
	assert.NoError(t, err)

	first, err := store.Save("foto.jpg", strings.NewReader("a"))
	assert.NoError(t, err)
	second, err := store.Save("foto.jpg", strings.NewReader("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSave_NoExtensionKeepsBareName(t *testing.T) {
	store, err := storage.NewUploadStore(config.UploadsConfig{Dir: t.TempDir(), URLPrefix: "/uploads"})
	assert.NoError(t, err)

	url, err := store.Save("README", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(url), url)
}

func TestNewUploadStore_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := storage.NewUploadStore(config.UploadsConfig{Dir: dir, URLPrefix: "/uploads"})
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
