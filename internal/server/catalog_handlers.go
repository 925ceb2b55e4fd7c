package server

import (
	"github.com/gin-gonic/gin"
)

// searchArtists godoc
// @Summary Search the catalog for artists
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} domain.Artist
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/search/artists [get]
func (s *Server) searchArtists(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(400, gin.H{"error": ErrMissingQuery.Error()})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	artists, err := catalog.SearchArtists(c.Request.Context(), query)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, artists)
}

// searchTracks godoc
// @Summary Search the catalog for tracks
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} domain.Track
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/search/tracks [get]
func (s *Server) searchTracks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(400, gin.H{"error": ErrMissingQuery.Error()})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	tracks, err := catalog.SearchTracks(c.Request.Context(), query)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, tracks)
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Me
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me [get]
func (s *Server) getProfile(c *gin.Context) {
	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	profile, err := catalog.GetUserProfile(c.Request.Context())
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profile)
}

// getUserPlaylists godoc
// @Summary List the user's catalog playlists
// @Tags Me
// @Produce json
// @Success 200 {array} domain.SavedPlaylist
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/playlists [get]
func (s *Server) getUserPlaylists(c *gin.Context) {
	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	playlists, err := catalog.GetUserPlaylists(c.Request.Context())
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, playlists)
}

// deleteCatalogPlaylist godoc
// @Summary Remove a playlist from the user's catalog library
// @Tags Me
// @Produce json
// @Param id path string true "Catalog playlist ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/playlists/{id} [delete]
func (s *Server) deleteCatalogPlaylist(c *gin.Context) {
	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	if err := catalog.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Playlist removed from library"})
}

// addCatalogTracks godoc
// @Summary Add tracks to a catalog playlist
// @Tags Me
// @Accept json
// @Produce json
// @Param id path string true "Catalog playlist ID"
// @Param request body AddCatalogTracksRequest true "Track URIs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/playlists/{id}/tracks [post]
func (s *Server) addCatalogTracks(c *gin.Context) {
	var req AddCatalogTracksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	if err := catalog.AddTracksToPlaylist(c.Request.Context(), c.Param("id"), req.URIs); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Tracks added"})
}

// removeCatalogTrack godoc
// @Summary Remove a track from a catalog playlist
// @Tags Me
// @Produce json
// @Param id path string true "Catalog playlist ID"
// @Param uri query string true "Track URI"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/playlists/{id}/tracks [delete]
func (s *Server) removeCatalogTrack(c *gin.Context) {
	uri := c.Query("uri")
	if uri == "" {
		c.JSON(400, gin.H{"error": "missing track uri"})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	if err := catalog.RemoveTrackFromPlaylist(c.Request.Context(), c.Param("id"), uri); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Track removed"})
}
