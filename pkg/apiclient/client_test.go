package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollit/pkg/models"
)

func TestGetVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/video", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"videos": []models.Video{{ID: 2, Title: "newer"}, {ID: 1, Title: "older"}},
		})
	}))
	defer srv.Close()

	videos, err := New(srv.URL).GetVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "newer", videos[0].Title)
}

func TestGetVideosEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "no videos found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetVideos(context.Background())
	assert.True(t, errors.Is(err, ErrNoVideos), "err=%v", err)
}

func TestCreateVideoSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var req CreateVideoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "clip", req.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"video":   models.Video{ID: 5, Title: req.Title},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	video, err := c.CreateVideo(context.Background(), CreateVideoRequest{
		Title:    "clip",
		VideoURL: "https://cdn/v.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), video.ID)
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(LoginResponse{
				Token: "tok-456",
				User:  models.User{ID: 3, Email: "a@b.c"},
			})
		case "/api/video":
			assert.Equal(t, "Bearer tok-456", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]interface{}{"videos": []models.Video{{ID: 1}}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.User.ID)

	_, err = c.GetVideos(context.Background())
	require.NoError(t, err)
}

func TestErrorBodiesSurfaceMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
	}))
	defer srv.Close()

	err := New(srv.URL).Register(context.Background(), RegisterRequest{
		Name: "ana", Email: "a@b.c", Password: "pw",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user already exists")
}
