package server

import (
	"github.com/gin-gonic/gin"

	"github.com/mixtape-labs/mixtape/internal/favorites"
)

// optionalSyncer builds a catalog syncer when the caller supplied a token.
// Favorites work without authentication; the catalog mirror is best-effort.
func (s *Server) optionalSyncer(c *gin.Context) favorites.Syncer {
	token, ok := bearerToken(c)
	if !ok {
		return nil
	}
	return s.newCatalog(token)
}

// listFavorites godoc
// @Summary List favorite tracks
// @Tags Favorites
// @Produce json
// @Success 200 {array} favorites.Favorite
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites [get]
func (s *Server) listFavorites(c *gin.Context) {
	found, err := s.favorites.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if found == nil {
		found = []favorites.Favorite{}
	}
	c.JSON(200, found)
}

// addFavorite godoc
// @Summary Mark a track as a favorite
// @Description Stores the favorite locally and mirrors it to the user's catalog library in the background.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param trackId path string true "Track ID"
// @Param request body FavoriteRequest false "Track metadata"
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites/{trackId} [put]
func (s *Server) addFavorite(c *gin.Context) {
	var req FavoriteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
	}

	favorite := favorites.Favorite{
		TrackID: c.Param("trackId"),
		Name:    req.Name,
		Artist:  req.Artist,
	}

	if err := s.favorites.Add(c.Request.Context(), favorite, s.optionalSyncer(c)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Favorite added"})
}

// removeFavorite godoc
// @Summary Remove a favorite track
// @Tags Favorites
// @Produce json
// @Param trackId path string true "Track ID"
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites/{trackId} [delete]
func (s *Server) removeFavorite(c *gin.Context) {
	if err := s.favorites.Remove(c.Request.Context(), c.Param("trackId"), s.optionalSyncer(c)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Favorite removed"})
}
