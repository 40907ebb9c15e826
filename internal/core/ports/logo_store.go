package ports

import (
	"context"
	"io"
)

// LogoStore abstracts the object storage holding listing logos.
type LogoStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
