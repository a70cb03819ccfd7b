// Package mediahost is the boundary to the external media hosting service.
// The server hands file bytes over and gets a durable URL back; encoding,
// storage and delivery all happen on the host's side.
package mediahost

import (
	"context"
	"io"
)

type UploadInput struct {
	Name        string
	ContentType string
	Size        int64
	// OnProgress, if set, is called with cumulative uploaded bytes.
	OnProgress func(uploaded, total int64)
}

type UploadResult struct {
	URL          string
	ThumbnailURL string
}

type Host interface {
	Upload(ctx context.Context, body io.Reader, in UploadInput) (*UploadResult, error)
}
