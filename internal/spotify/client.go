package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mixtape-labs/mixtape/internal/domain"
)

// Client is a thin authenticated wrapper around the catalog API. It is
// bound to a single bearer token; the server constructs one per request
// from the caller's Authorization header.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog API client for the given base URL and
// bearer token.
func NewClient(baseURL, token string) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(token)

	return &Client{http: http}
}

// GetRecommendations fetches track recommendations for the given seed
// entities and target parameters. Seeds are comma-joined query parameters;
// each target parameter is appended as its own query parameter.
func (c *Client) GetRecommendations(ctx context.Context, seedArtists, seedGenres, seedTracks []string, targetParams map[string]string, limit int) ([]domain.Track, error) {
	query := map[string]string{
		"limit": strconv.Itoa(limit),
	}
	if len(seedArtists) > 0 {
		query["seed_artists"] = strings.Join(seedArtists, ",")
	}
	if len(seedGenres) > 0 {
		query["seed_genres"] = strings.Join(seedGenres, ",")
	}
	if len(seedTracks) > 0 {
		query["seed_tracks"] = strings.Join(seedTracks, ",")
	}
	for key, value := range targetParams {
		query[key] = value
	}

	var result recommendationsResponse
	if err := c.get(ctx, "/recommendations", query, &result); err != nil {
		return nil, err
	}
	return result.Tracks, nil
}

// GetUserTopTracks fetches the authenticated user's most played tracks.
func (c *Client) GetUserTopTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	var result topTracksResponse
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.get(ctx, "/me/top/tracks", query, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// GetUserProfile fetches the authenticated user's profile.
func (c *Client) GetUserProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchArtists searches the catalog for artists matching the query.
func (c *Client) SearchArtists(ctx context.Context, q string) ([]domain.Artist, error) {
	var result searchResponse
	query := map[string]string{"q": q, "type": "artist", "limit": "10"}
	if err := c.get(ctx, "/search", query, &result); err != nil {
		return nil, err
	}
	if result.Artists == nil {
		return nil, nil
	}
	return result.Artists.Items, nil
}

// SearchTracks searches the catalog for tracks matching the query.
func (c *Client) SearchTracks(ctx context.Context, q string) ([]domain.Track, error) {
	var result searchResponse
	query := map[string]string{"q": q, "type": "track", "limit": "10"}
	if err := c.get(ctx, "/search", query, &result); err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return nil, nil
	}
	return result.Tracks.Items, nil
}

// GetUserPlaylists lists the playlists stored in the user's catalog library.
func (c *Client) GetUserPlaylists(ctx context.Context) ([]domain.SavedPlaylist, error) {
	var page playlistPage
	if err := c.get(ctx, "/me/playlists", map[string]string{"limit": "50"}, &page); err != nil {
		return nil, err
	}
	playlists := make([]domain.SavedPlaylist, len(page.Items))
	for i, item := range page.Items {
		playlists[i] = mapPlaylist(item)
	}
	return playlists, nil
}

// CreatePlaylist creates a new private playlist in the user's catalog library.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name, description string) (*domain.SavedPlaylist, error) {
	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      false,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("/users/%s/playlists", userID))
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return nil, classifyResponse(resp)
	}

	var wire playlistWire
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	playlist := mapPlaylist(wire)
	return &playlist, nil
}

// AddTracksToPlaylist appends tracks, given by URI, to a catalog playlist.
func (c *Client) AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"uris": uris}).
		Post(fmt.Sprintf("/playlists/%s/tracks", playlistID))
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}
	return nil
}

// RemoveTrackFromPlaylist removes all occurrences of a track, given by URI,
// from a catalog playlist.
func (c *Client) RemoveTrackFromPlaylist(ctx context.Context, playlistID, uri string) error {
	body := map[string]any{
		"tracks": []map[string]string{{"uri": uri}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Delete(fmt.Sprintf("/playlists/%s/tracks", playlistID))
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}
	return nil
}

// DeletePlaylist removes a playlist from the user's library. The catalog
// models this as unfollowing; the playlist itself is not destroyed.
func (c *Client) DeletePlaylist(ctx context.Context, playlistID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/playlists/%s/followers", playlistID))
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}
	return nil
}

// SaveTrack adds a track to the user's saved tracks.
func (c *Client) SaveTrack(ctx context.Context, trackID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", trackID).
		Put("/me/tracks")
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}
	return nil
}

// UnsaveTrack removes a track from the user's saved tracks.
func (c *Client) UnsaveTrack(ctx context.Context, trackID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", trackID).
		Delete("/me/tracks")
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}
	return nil
}

// get issues a GET request and decodes a 2xx JSON response into out.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return classifyResponse(resp)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// classifyResponse turns a non-2xx response into a typed error, pulling the
// message out of the catalog's error envelope when present.
func classifyResponse(resp *resty.Response) error {
	var body errorBody
	message := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		message = body.Error.Message
	}
	return classifyStatus(resp.StatusCode(), message)
}
