package upload

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"scrollit/pkg/apiclient"
	"scrollit/pkg/mediahost"
	"scrollit/pkg/models"
)

func TestValidateFile(t *testing.T) {
	t.Parallel()

	if err := ValidateFile("video/mp4", 10<<20); err != nil {
		t.Fatalf("mp4 rejected: %v", err)
	}
	if err := ValidateFile("video/quicktime", MaxFileSize); err != nil {
		t.Fatalf("file at the size limit rejected: %v", err)
	}
	if err := ValidateFile("image/png", 10); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("err=%v, want ErrInvalidType", err)
	}
	if err := ValidateFile("application/octet-stream", 10); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("err=%v, want ErrInvalidType", err)
	}
	if err := ValidateFile("video/mp4", MaxFileSize+1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err=%v, want ErrTooLarge", err)
	}
}

type fakeHost struct {
	called    bool
	err       error
	result    *mediahost.UploadResult
	gotIn     mediahost.UploadInput
	zeroTotal bool
}

var _ mediahost.Host = (*fakeHost)(nil)

func (f *fakeHost) Upload(_ context.Context, body io.Reader, in mediahost.UploadInput) (*mediahost.UploadResult, error) {
	f.called = true
	f.gotIn = in
	if f.err != nil {
		return nil, f.err
	}
	if in.OnProgress != nil {
		if f.zeroTotal {
			in.OnProgress(10, 0)
		} else {
			in.OnProgress(in.Size/2, in.Size)
			in.OnProgress(in.Size, in.Size)
		}
	}
	_, _ = io.Copy(io.Discard, body)
	return f.result, nil
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

type fakeCreator struct {
	called bool
	err    error
	got    apiclient.CreateVideoRequest
}

var _ VideoCreator = (*fakeCreator)(nil)

func (f *fakeCreator) CreateVideo(_ context.Context, req apiclient.CreateVideoRequest) (*models.Video, error) {
	f.called = true
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Video{ID: 7, Title: req.Title, VideoURL: req.VideoURL}, nil
}

func validRequest() Request {
	return Request{
		Title:       "  my clip  ",
		Description: " about nothing ",
		File:        strings.NewReader("bytes"),
		Name:        "clip.mp4",
		ContentType: "video/mp4",
		Size:        5,
	}
}

func TestFlowSuccess(t *testing.T) {
	t.Parallel()

	host := &fakeHost{result: &mediahost.UploadResult{
		URL:          "https://cdn.example/v/1.mp4",
		ThumbnailURL: "https://cdn.example/t/1.jpg",
	}}
	creator := &fakeCreator{}
	flow := NewFlow(host, creator)

	var fractions []float64
	req := validRequest()
	req.OnProgress = func(fr float64) { fractions = append(fractions, fr) }

	video, err := flow.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if video.ID != 7 {
		t.Fatalf("unexpected video: %+v", video)
	}
	if creator.got.Title != "my clip" || creator.got.Description != "about nothing" {
		t.Fatalf("fields not trimmed: %+v", creator.got)
	}
	if creator.got.VideoURL != host.result.URL || creator.got.ThumbnailURL != host.result.ThumbnailURL {
		t.Fatalf("host URLs not forwarded: %+v", creator.got)
	}
	if creator.got.Transform == nil || creator.got.Transform.Width != 1920 {
		t.Fatalf("transform not set: %+v", creator.got.Transform)
	}
	if len(fractions) != 2 || fractions[len(fractions)-1] != 1.0 {
		t.Fatalf("progress fractions wrong: %v", fractions)
	}
}

func TestFlowMissingTitleStopsBeforeUpload(t *testing.T) {
	t.Parallel()

	host := &fakeHost{}
	flow := NewFlow(host, &fakeCreator{})

	req := validRequest()
	req.Title = "   "
	if _, err := flow.Run(context.Background(), req); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("err=%v, want ErrMissingTitle", err)
	}
	if host.called {
		t.Fatalf("host must not be called without a title")
	}
}

func TestFlowRejectsBeforeUpload(t *testing.T) {
	t.Parallel()

	host := &fakeHost{}
	creator := &fakeCreator{}
	flow := NewFlow(host, creator)

	req := validRequest()
	req.ContentType = "text/plain"
	if _, err := flow.Run(context.Background(), req); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("err=%v, want ErrInvalidType", err)
	}

	req = validRequest()
	req.Size = MaxFileSize + 1
	if _, err := flow.Run(context.Background(), req); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err=%v, want ErrTooLarge", err)
	}

	if host.called || creator.called {
		t.Fatalf("collaborators must not run on validation failure")
	}
}

func TestFlowErrorCategories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hostErr error
		want    error
	}{
		{"cancelled", context.Canceled, ErrCancelled},
		{"deadline", context.DeadlineExceeded, ErrCancelled},
		{"network", timeoutError{}, ErrNetwork},
		{"server", errors.New("503 from host"), ErrServer},
	}
	for _, tc := range cases {
		flow := NewFlow(&fakeHost{err: tc.hostErr}, &fakeCreator{})
		_, err := flow.Run(context.Background(), validRequest())
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err=%v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestFlowIgnoresProgressWithoutTotal(t *testing.T) {
	t.Parallel()

	host := &fakeHost{
		result:    &mediahost.UploadResult{URL: "u", ThumbnailURL: "t"},
		zeroTotal: true,
	}
	flow := NewFlow(host, &fakeCreator{})

	var fractions []float64
	req := validRequest()
	req.OnProgress = func(fr float64) { fractions = append(fractions, fr) }

	if _, err := flow.Run(context.Background(), req); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fractions) != 0 {
		t.Fatalf("reports without a known total must be dropped, got %v", fractions)
	}
}

func TestFlowPersistFailureIsServerError(t *testing.T) {
	t.Parallel()

	host := &fakeHost{result: &mediahost.UploadResult{URL: "u", ThumbnailURL: "t"}}
	creator := &fakeCreator{err: errors.New("db down")}
	flow := NewFlow(host, creator)

	if _, err := flow.Run(context.Background(), validRequest()); !errors.Is(err, ErrServer) {
		t.Fatalf("err=%v, want ErrServer", err)
	}
}
