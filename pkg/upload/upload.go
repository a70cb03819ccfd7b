// Package upload validates a selected video file and walks it through the
// media host and the video API. One human-readable error per failure
// category; nothing here retries on its own.
package upload

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"scrollit/pkg/apiclient"
	"scrollit/pkg/mediahost"
	"scrollit/pkg/models"
)

const MaxFileSize = 100 << 20 // 100 MB

var (
	ErrInvalidType  = errors.New("invalid file type, please upload mp4, mov, avi, webm or mkv")
	ErrTooLarge     = errors.New("file size exceeds the 100MB limit")
	ErrMissingTitle = errors.New("please select a file and enter a title")
	ErrCancelled    = errors.New("upload was cancelled")
	ErrNetwork      = errors.New("network error, please check your connection")
	ErrServer       = errors.New("server error, please try again later")
)

var allowedTypes = map[string]struct{}{
	"video/mp4":        {},
	"video/avi":        {},
	"video/mov":        {},
	"video/quicktime":  {},
	"video/webm":       {},
	"video/mkv":        {},
	"video/x-matroska": {},
}

// ValidateFile checks the declared media type and size before any bytes move.
func ValidateFile(contentType string, size int64) error {
	if _, ok := allowedTypes[contentType]; !ok {
		return ErrInvalidType
	}
	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// VideoCreator persists the uploaded video's record.
type VideoCreator interface {
	CreateVideo(ctx context.Context, req apiclient.CreateVideoRequest) (*models.Video, error)
}

type Flow struct {
	host mediahost.Host
	api  VideoCreator
}

func NewFlow(host mediahost.Host, api VideoCreator) *Flow {
	return &Flow{host: host, api: api}
}

type Request struct {
	Title       string
	Description string
	File        io.Reader
	Name        string
	ContentType string
	Size        int64
	// OnProgress receives the upload fraction in [0, 1].
	OnProgress func(fraction float64)
}

// Run validates, uploads to the media host, then creates the video record.
func (f *Flow) Run(ctx context.Context, req Request) (*models.Video, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}
	if err := ValidateFile(req.ContentType, req.Size); err != nil {
		return nil, err
	}

	in := mediahost.UploadInput{
		Name:        req.Name,
		ContentType: req.ContentType,
		Size:        req.Size,
	}
	if req.OnProgress != nil {
		in.OnProgress = func(uploaded, total int64) {
			if total > 0 {
				req.OnProgress(float64(uploaded) / float64(total))
			}
		}
	}

	res, err := f.host.Upload(ctx, req.File, in)
	if err != nil {
		return nil, Categorize(err)
	}

	video, err := f.api.CreateVideo(ctx, apiclient.CreateVideoRequest{
		Title:        title,
		VideoURL:     res.URL,
		Description:  strings.TrimSpace(req.Description),
		ThumbnailURL: res.ThumbnailURL,
		Transform:    &models.Transform{Width: 1920, Height: 1080, Quality: 80},
	})
	if err != nil {
		return nil, Categorize(err)
	}
	return video, nil
}

// Categorize maps a collaborator failure onto its single human-readable
// category: cancelled, network, or server.
func Categorize(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCancelled
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrNetwork
	}
	return ErrServer
}
