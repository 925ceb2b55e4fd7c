package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mixtape-labs/mixtape/config"
	"github.com/mixtape-labs/mixtape/internal/archive"
	"github.com/mixtape-labs/mixtape/internal/auth"
	"github.com/mixtape-labs/mixtape/internal/favorites"
	"github.com/mixtape-labs/mixtape/internal/generator"
	"github.com/mixtape-labs/mixtape/internal/playlist"
	"github.com/mixtape-labs/mixtape/internal/spotify"
)

// Server handles HTTP requests for the playlist generator
type Server struct {
	cfg       *config.Config
	router    *gin.Engine
	generator *generator.Generator
	playlists *playlist.Manager
	favorites *favorites.Repository
	archive   archive.Storage
	auth      *auth.Service

	// newCatalog builds a catalog client bound to the caller's bearer
	// token; tests swap it for a factory returning mocks.
	newCatalog func(token string) CatalogClient
}

// New creates a new HTTP server instance
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	store, err := favorites.NewSQLiteStore(cfg.Favorites.DatabasePath)
	if err != nil {
		return nil, err
	}

	archiveStorage, err := archive.New(context.Background(), cfg.Archive)
	if err != nil {
		return nil, err
	}

	// Auth is optional: without client credentials the login routes are
	// unavailable but token-bearing API calls still work.
	var authService *auth.Service
	if cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "" {
		authService, err = auth.NewService(cfg.Spotify)
		if err != nil {
			return nil, err
		}
	}

	server := &Server{
		cfg:       cfg,
		router:    router,
		generator: generator.New(cfg.Generator),
		playlists: playlist.NewManager(),
		favorites: favorites.NewRepository(store),
		archive:   archiveStorage,
		auth:      authService,
		newCatalog: func(token string) CatalogClient {
			return spotify.NewClient(cfg.Spotify.APIBaseURL, token)
		},
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// OAuth login flow
	s.router.GET("/auth/login", s.authLogin)
	s.router.GET("/auth/callback", s.authCallback)

	// API endpoints
	api := s.router.Group("/api/v1")
	{
		api.POST("/playlists", s.generatePlaylist)
		api.GET("/playlists", s.listPlaylists)
		api.GET("/playlists/:id", s.getPlaylist)
		api.DELETE("/playlists/:id", s.deletePlaylist)
		api.POST("/playlists/:id/more", s.addMoreTracks)
		api.POST("/playlists/:id/refresh", s.refreshPlaylist)
		api.PUT("/playlists/:id/order", s.reorderPlaylist)
		api.DELETE("/playlists/:id/tracks/:trackId", s.removeTrack)
		api.POST("/playlists/:id/export", s.exportPlaylist)
		api.POST("/playlists/:id/save", s.savePlaylist)

		api.GET("/exports", s.listExports)
		api.GET("/exports/:name", s.downloadExport)

		api.GET("/search/artists", s.searchArtists)
		api.GET("/search/tracks", s.searchTracks)

		api.GET("/me", s.getProfile)
		api.GET("/me/playlists", s.getUserPlaylists)
		api.DELETE("/me/playlists/:id", s.deleteCatalogPlaylist)
		api.POST("/me/playlists/:id/tracks", s.addCatalogTracks)
		api.DELETE("/me/playlists/:id/tracks", s.removeCatalogTrack)

		api.GET("/favorites", s.listFavorites)
		api.PUT("/favorites/:trackId", s.addFavorite)
		api.DELETE("/favorites/:trackId", s.removeFavorite)
	}
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   "mixtape",
	})
}
