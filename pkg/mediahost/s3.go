package mediahost

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// S3Host stores media in an S3 bucket and serves it straight from there.
type S3Host struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
	folder   string
}

func NewS3Host(region, bucket, folder string) (*S3Host, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &S3Host{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		region:   region,
		folder:   folder,
	}, nil
}

func (h *S3Host) Upload(ctx context.Context, body io.Reader, in UploadInput) (*UploadResult, error) {
	key := fmt.Sprintf("%s/%s-%s", h.folder, uuid.New().String(), filepath.Base(in.Name))

	contentType := in.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(in.Name))
	}

	if in.OnProgress != nil && in.Size > 0 {
		body = newProgressReader(body, in.Size, in.OnProgress)
	}

	_, err := h.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", h.bucket, h.region, key)
	// The host derives thumbnails from the media URL itself.
	return &UploadResult{URL: url, ThumbnailURL: url}, nil
}
