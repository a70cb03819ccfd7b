// Package apiclient is a thin client for the SCROLLIT HTTP surface.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scrollit/pkg/models"
)

// ErrNoVideos is the empty feed: the list endpoint answers 404 when the
// table is empty, and callers show an empty state rather than a failure.
var ErrNoVideos = errors.New("no videos found")

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a session token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type CreateVideoRequest struct {
	Title        string            `json:"title"`
	VideoURL     string            `json:"videoUrl"`
	Description  string            `json:"description,omitempty"`
	ThumbnailURL string            `json:"thumbnailUrl,omitempty"`
	Transform    *models.Transform `json:"transform,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// GetVideos returns the feed sequence, newest first.
func (c *Client) GetVideos(ctx context.Context) ([]models.Video, error) {
	var out struct {
		Videos []models.Video `json:"videos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/video", nil, &out); err != nil {
		return nil, err
	}
	return out.Videos, nil
}

func (c *Client) CreateVideo(ctx context.Context, req CreateVideoRequest) (*models.Video, error) {
	var out struct {
		Success bool         `json:"success"`
		Video   models.Video `json:"video"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/video", req, &out); err != nil {
		return nil, err
	}
	return &out.Video, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method == http.MethodGet && path == "/api/video" {
		return ErrNoVideos
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("%s: %s", resp.Status, apiErr.Message)
			}
		}
		return errors.New(resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
