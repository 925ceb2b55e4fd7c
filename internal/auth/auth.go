package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/mixtape-labs/mixtape/config"
)

// Scopes requested from the catalog. They cover reading the user's profile
// and listening history, and writing playlists and saved tracks.
var scopes = []string{
	"user-read-private",
	"user-top-read",
	"user-library-modify",
	"playlist-read-private",
	"playlist-modify-private",
	"playlist-modify-public",
}

// Service runs the authorization-code flow against the catalog's accounts
// service. Token storage stays with the browser client; this service only
// produces the login URL and exchanges the returned code.
type Service struct {
	config *oauth2.Config
}

// NewService creates an auth service from the catalog OAuth settings.
func NewService(cfg config.SpotifyConfig) (*Service, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	return &Service{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AccountsURL + "/authorize",
				TokenURL: cfg.AccountsURL + "/api/token",
			},
		},
	}, nil
}

// AuthURL returns the URL the browser should be redirected to for login.
func (s *Service) AuthURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}
