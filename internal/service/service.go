// Package service holds the business rules on top of the repositories.
package service

import (
	"context"
	"log/slog"

	"photoshare/internal/middleware"
	"photoshare/internal/observability"
	"photoshare/internal/storage"
)

// Upload is a file received from a multipart form.
type Upload struct {
	Filename string
	Content  []byte
}

func (u *Upload) present() bool {
	return u != nil && u.Filename != ""
}

func (u *Upload) name() string {
	if u == nil {
		return ""
	}
	return u.Filename
}

func (u *Upload) bytes() []byte {
	if u == nil {
		return nil
	}
	return u.Content
}

// discardBlob removes a file written for a row that was never inserted.
func discardBlob(ctx context.Context, blobs storage.Store, name string) {
	if err := blobs.Remove(name); err != nil {
		observability.OrphanedBlobs.Inc()
		middleware.Logger.ErrorContext(ctx, "failed to remove orphaned upload",
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
	}
}
