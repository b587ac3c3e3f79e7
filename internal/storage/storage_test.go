package storage

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodgram/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestDecodeDataURI(t *testing.T) {
	img, err := DecodeDataURI("data:image/png;base64," + pixelPNG)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "png", img.Ext)
	assert.NotEmpty(t, img.Data)

	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"no data prefix", "image/png;base64," + pixelPNG},
		{"not base64 flagged", "data:image/png," + pixelPNG},
		{"bad base64", "data:image/png;base64,@@@"},
		{"not an image", "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello world"))},
		{"mismatched type", "data:image/jpeg;base64," + pixelPNG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDataURI(tt.uri)
			assert.ErrorIs(t, err, ErrInvalidImage)
		})
	}
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := New(context.Background(), config.StorageConfig{Driver: "local", MediaRoot: root, MediaURL: "/media"})
	require.NoError(t, err)

	img, err := DecodeDataURI("data:image/png;base64," + pixelPNG)
	require.NoError(t, err)

	key, err := store.Save(context.Background(), "recipes/images", img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "recipes/images/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "/media/"+key, store.URL(key))

	written, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, img.Data, written)

	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), config.StorageConfig{Driver: "s3"})
	assert.Error(t, err)
}
