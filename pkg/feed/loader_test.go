package feed

import (
	"context"
	"errors"
	"testing"

	"scrollit/pkg/apiclient"
	"scrollit/pkg/models"
)

type fakeLister struct {
	videos []models.Video
	err    error
}

var _ VideoLister = (*fakeLister)(nil)

func (f *fakeLister) GetVideos(_ context.Context) ([]models.Video, error) {
	return f.videos, f.err
}

func TestLoadBuildsController(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{videos: []models.Video{{ID: 1}, {ID: 2}}}
	c, err := Load(context.Background(), lister, NewRegistry())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer c.Close()
	if c.State().Count != 2 {
		t.Fatalf("count=%d, want 2", c.State().Count)
	}
}

func TestLoadEmptyFeedIsDistinct(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{err: apiclient.ErrNoVideos}
	_, err := Load(context.Background(), lister, NewRegistry())
	if !errors.Is(err, apiclient.ErrNoVideos) {
		t.Fatalf("err=%v, want ErrNoVideos", err)
	}
}
