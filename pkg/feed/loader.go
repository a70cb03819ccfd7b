package feed

import (
	"context"

	"scrollit/pkg/models"
)

// VideoLister is the feed-loading collaborator, usually *apiclient.Client.
type VideoLister interface {
	GetVideos(ctx context.Context) ([]models.Video, error)
}

// Load fetches the sequence and builds a controller over it. An empty feed
// surfaces as the lister's not-found error (apiclient.ErrNoVideos) before
// the machine ever runs; callers branch to the empty state on it. There is
// no retry here: retry is a fresh Load of the whole sequence.
func Load(ctx context.Context, lister VideoLister, players *Registry) (*Controller, error) {
	videos, err := lister.GetVideos(ctx)
	if err != nil {
		return nil, err
	}
	return NewController(videos, players)
}
