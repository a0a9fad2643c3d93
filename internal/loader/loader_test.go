package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/gbinspect/internal/header/headertest"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load cartridge file", func(t *testing.T) {
		data := headertest.Tetris()
		tmpFile := createTempFile(t, data)

		loader := New()
		loaded, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, data, loaded)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loaded, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.gb")
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("error on directory", func(t *testing.T) {
		_, err := New().Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("error on oversized file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, maxImageSize+1))

		_, err := New().Load(tmpFile)
		assert.ErrorContains(t, err, "exceeds the maximum cartridge size")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
