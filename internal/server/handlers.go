package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mixtape-labs/mixtape/internal/playlist"
)

// generatePlaylist godoc
// @Summary Generate a playlist from preferences
// @Description Runs the recommendation engine against the supplied preference set and stores the result as a playlist session.
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body GeneratePlaylistRequest true "Generation parameters"
// @Success 201 {object} playlist.Playlist
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/playlists [post]
func (s *Server) generatePlaylist(c *gin.Context) {
	var req GeneratePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	// Generation is best-effort: an empty result is a valid response, not
	// an error.
	tracks := s.generator.Generate(c.Request.Context(), catalog, req.Preferences)
	created := s.playlists.Create(req.Name, req.Preferences, tracks)

	slog.Info("Generated playlist", "playlistId", created.ID, "tracks", len(tracks))
	c.JSON(201, created)
}

// listPlaylists godoc
// @Summary List playlist sessions
// @Tags Playlists
// @Produce json
// @Success 200 {object} playlist.Response
// @Router /api/v1/playlists [get]
func (s *Server) listPlaylists(c *gin.Context) {
	page := 1
	pageSize := playlist.DefaultPageSize

	if p := c.Query("page"); p != "" {
		fmt.Sscanf(p, "%d", &page)
	}
	if ps := c.Query("pageSize"); ps != "" {
		fmt.Sscanf(ps, "%d", &pageSize)
	}

	c.JSON(200, s.playlists.List(page, pageSize))
}

// getPlaylist godoc
// @Summary Get a playlist session
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} playlist.Playlist
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id} [get]
func (s *Server) getPlaylist(c *gin.Context) {
	found, err := s.playlists.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, found)
}

// deletePlaylist godoc
// @Summary Delete a playlist session
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id} [delete]
func (s *Server) deletePlaylist(c *gin.Context) {
	if err := s.playlists.Delete(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Playlist deleted"})
}

// addMoreTracks godoc
// @Summary Add more tracks to a playlist
// @Description Re-runs the generator with the playlist's stored preferences and appends the tracks not already present.
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} playlist.Playlist
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/more [post]
func (s *Server) addMoreTracks(c *gin.Context) {
	found, err := s.playlists.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	batch := s.generator.Generate(c.Request.Context(), catalog, found.Preferences)
	updated, added, err := s.playlists.AddMore(found.ID, batch)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	slog.Info("Added tracks to playlist", "playlistId", found.ID, "added", added)
	c.JSON(200, updated)
}

// refreshPlaylist godoc
// @Summary Regenerate a playlist from scratch
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} playlist.Playlist
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/refresh [post]
func (s *Server) refreshPlaylist(c *gin.Context) {
	found, err := s.playlists.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	tracks := s.generator.Generate(c.Request.Context(), catalog, found.Preferences)
	updated, err := s.playlists.Replace(found.ID, tracks)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, updated)
}

// reorderPlaylist godoc
// @Summary Reorder a playlist
// @Description Replaces the track sequence with the caller-supplied order from drag-and-drop.
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist ID"
// @Param request body ReorderRequest true "New track order"
// @Success 200 {object} playlist.Playlist
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/order [put]
func (s *Server) reorderPlaylist(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	updated, err := s.playlists.Reorder(c.Param("id"), req.Tracks)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, updated)
}

// removeTrack godoc
// @Summary Remove a track from a playlist
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Param trackId path string true "Track ID"
// @Success 200 {object} playlist.Playlist
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/tracks/{trackId} [delete]
func (s *Server) removeTrack(c *gin.Context) {
	updated, removed, err := s.playlists.RemoveTrack(c.Param("id"), c.Param("trackId"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(404, gin.H{"error": fmt.Sprintf("track not found: %s", c.Param("trackId"))})
		return
	}

	c.JSON(200, updated)
}

// exportPlaylist godoc
// @Summary Export a playlist snapshot
// @Description Writes a JSON snapshot of the playlist to the configured archive storage.
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/export [post]
func (s *Server) exportPlaylist(c *gin.Context) {
	found, err := s.playlists.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	data, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to serialize playlist: %v", err)})
		return
	}

	path, err := s.archive.SaveSnapshot(c.Request.Context(), found.ID, data)
	if err != nil {
		slog.Error("Failed to archive playlist snapshot", "playlistId", found.ID, "error", err)
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to save snapshot: %v", err)})
		return
	}

	slog.Info("Exported playlist snapshot", "playlistId", found.ID, "path", path)
	c.JSON(200, gin.H{"message": "Snapshot saved", "path": path})
}

// savePlaylist godoc
// @Summary Save a playlist to the user's catalog library
// @Description Creates a catalog playlist and adds the session's tracks. Unlike generation this is a stateful write the user asked for, so failures are surfaced.
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist ID"
// @Param request body SavePlaylistRequest false "Playlist metadata"
// @Success 201 {object} domain.SavedPlaylist
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/playlists/{id}/save [post]
func (s *Server) savePlaylist(c *gin.Context) {
	found, err := s.playlists.Get(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	if len(found.Tracks) == 0 {
		c.JSON(400, gin.H{"error": ErrEmptyPlaylist.Error()})
		return
	}

	// Body is optional; the session name is the default
	var req SavePlaylistRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
			return
		}
	}
	if req.Name == "" {
		req.Name = found.Name
	}

	catalog, ok := s.catalogFromRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	profile, err := catalog.GetUserProfile(ctx)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	created, err := catalog.CreatePlaylist(ctx, profile.ID, req.Name, req.Description)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	uris := make([]string, len(found.Tracks))
	for i, track := range found.Tracks {
		uris[i] = track.URI
	}
	if err := catalog.AddTracksToPlaylist(ctx, created.ID, uris); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	slog.Info("Saved playlist to catalog", "playlistId", found.ID, "catalogPlaylistId", created.ID, "tracks", len(uris))
	c.JSON(201, created)
}

// listExports godoc
// @Summary List archived playlist snapshots
// @Tags Exports
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/exports [get]
func (s *Server) listExports(c *gin.Context) {
	names, err := s.archive.ListSnapshots(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(200, gin.H{"snapshots": names})
}

// downloadExport godoc
// @Summary Download an archived playlist snapshot
// @Tags Exports
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/exports/{name} [get]
func (s *Server) downloadExport(c *gin.Context) {
	reader, err := s.archive.GetReader(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(404, gin.H{"error": fmt.Sprintf("snapshot not found: %v", err)})
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/json")
	c.Status(200)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		slog.Error("Failed to stream snapshot", "name", c.Param("name"), "error", err)
	}
}
