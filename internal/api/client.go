package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lowpass/chime/internal/model"
)

// LibraryClient defines the interface for fetching pages of the user's
// music library. Implemented by *Client; fakes implement it in tests.
// Implementations must be safe for use from multiple goroutines, since
// fetches run off the UI loop.
type LibraryClient interface {
	GetSavedTracks(ctx context.Context, offset, limit int) (model.SongBatch, error)
}

// Ensure Client implements LibraryClient at compile time.
var _ LibraryClient = (*Client)(nil)

// Client talks to the Chime library HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultBaseURL   = "https://api.chime.dev/v1"
	defaultUserAgent = "chime/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL and bearer token.
func NewClient(baseURL, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

// GetSavedTracks retrieves one page of the user's saved tracks. The returned
// batch carries at most limit songs; a shorter page signals the end of the
// collection.
func (c *Client) GetSavedTracks(ctx context.Context, offset, limit int) (model.SongBatch, error) {
	if c == nil {
		return model.SongBatch{}, fmt.Errorf("client is nil")
	}
	if limit <= 0 {
		return model.SongBatch{}, fmt.Errorf("limit must be positive, got %d", limit)
	}
	values := url.Values{}
	values.Set("offset", strconv.Itoa(offset))
	values.Set("limit", strconv.Itoa(limit))
	rel := &url.URL{Path: "/me/tracks", RawQuery: values.Encode()}

	var payload savedTracksResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return model.SongBatch{}, err
	}
	batch := payload.toSongBatch(offset, limit)
	if len(batch.Songs) > limit {
		return model.SongBatch{}, fmt.Errorf("api returned %d items for limit %d", len(batch.Songs), limit)
	}
	return batch, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + rel.Path
	reqURL.RawQuery = rel.RawQuery
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}
