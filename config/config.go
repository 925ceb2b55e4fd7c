package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Server    ServerConfig    `yaml:"server"`
	Spotify   SpotifyConfig   `yaml:"spotify"`
	Generator GeneratorConfig `yaml:"generator"`
	Archive   ArchiveConfig   `yaml:"archive"`
	Favorites FavoritesConfig `yaml:"favorites"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// SpotifyConfig holds the catalog API endpoints and OAuth settings.
// Client credentials are read from the environment, not the config file.
type SpotifyConfig struct {
	APIBaseURL  string `yaml:"api_base_url"`
	AccountsURL string `yaml:"accounts_url"`
	RedirectURL string `yaml:"redirect_url"`

	ClientID     string `yaml:"-"`
	ClientSecret string `yaml:"-"`
}

// GeneratorConfig holds the tuning knobs for the playlist generation engine.
type GeneratorConfig struct {
	// MaxPlaylistSize caps the number of tracks in a generated playlist.
	MaxPlaylistSize int `yaml:"max_playlist_size"`

	// MinSeededYield is the unique-track count below which the genre
	// fallback stage runs after the seeded stage.
	MinSeededYield int `yaml:"min_seeded_yield"`

	// MinGenreYield is the unique-track count below which the top-tracks
	// fallback stage runs after the genre fallback stage.
	MinGenreYield int `yaml:"min_genre_yield"`

	// TopTracksLimit is how many of the user's top tracks to request in
	// the final fallback stage.
	TopTracksLimit int `yaml:"top_tracks_limit"`

	// RequestLimit is the per-call track limit sent to the recommendation
	// endpoint.
	RequestLimit int `yaml:"request_limit"`
}

type ArchiveConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	OutputDir string `yaml:"output_dir"`

	// GCS storage options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

type FavoritesConfig struct {
	DatabasePath string `yaml:"database_path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	// Unmarshal the YAML data into the struct
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// Set defaults if not provided
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	if config.Spotify.APIBaseURL == "" {
		config.Spotify.APIBaseURL = "https://api.spotify.com/v1"
	}

	if config.Spotify.AccountsURL == "" {
		config.Spotify.AccountsURL = "https://accounts.spotify.com"
	}

	if config.Spotify.RedirectURL == "" {
		config.Spotify.RedirectURL = "http://localhost:8080/auth/callback"
	}

	if config.Generator.MaxPlaylistSize == 0 {
		config.Generator.MaxPlaylistSize = 30
	}

	if config.Generator.MinSeededYield == 0 {
		config.Generator.MinSeededYield = 15
	}

	if config.Generator.MinGenreYield == 0 {
		config.Generator.MinGenreYield = 10
	}

	if config.Generator.TopTracksLimit == 0 {
		config.Generator.TopTracksLimit = 15
	}

	if config.Generator.RequestLimit == 0 {
		config.Generator.RequestLimit = 30
	}

	if config.Archive.Type == "" {
		config.Archive.Type = "local"
	}

	if config.Archive.OutputDir == "" {
		config.Archive.OutputDir = "output"
	}

	if config.Favorites.DatabasePath == "" {
		config.Favorites.DatabasePath = "data/favorites.db"
	}

	// Credentials come from the environment
	config.Spotify.ClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	config.Spotify.ClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")

	return config, nil
}
