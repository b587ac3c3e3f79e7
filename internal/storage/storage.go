// Package storage keeps recipe images either on the local filesystem or in
// an S3-compatible bucket.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodgram/internal/config"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("image must be a base64 encoded data URI")

// ImageStore saves image bytes under a generated key and resolves keys to
// public URLs.
type ImageStore interface {
	Save(ctx context.Context, prefix string, img *Image) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodeDataURI parses "data:image/png;base64,...." and checks that the
// payload really is an image.
func DecodeDataURI(uri string) (*Image, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidImage
	}
	declared := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}

	detected := http.DetectContentType(data)
	ext, ok := extensions[detected]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, detected)
	}
	if declared != "" && declared != detected && !(declared == "image/jpg" && detected == "image/jpeg") {
		return nil, fmt.Errorf("%w: declared %s but got %s", ErrInvalidImage, declared, detected)
	}
	return &Image{Data: data, ContentType: detected, Ext: ext}, nil
}

func newKey(prefix, ext string) string {
	return strings.Trim(prefix, "/") + "/" + uuid.NewString() + "." + ext
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (ImageStore, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.MediaRoot, cfg.MediaURL)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
