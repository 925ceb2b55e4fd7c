package server

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// authLogin godoc
// @Summary Redirect to the catalog's login page
// @Tags Auth
// @Success 307
// @Failure 503 {object} ErrorResponse
// @Router /auth/login [get]
func (s *Server) authLogin(c *gin.Context) {
	if s.auth == nil {
		c.JSON(503, gin.H{"error": ErrAuthDisabled.Error()})
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(500, gin.H{"error": "failed to generate state token"})
		return
	}
	state := hex.EncodeToString(buf)

	// State round-trips through a short-lived cookie
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(307, s.auth.AuthURL(state))
}

// authCallback godoc
// @Summary Exchange the authorization code for a token
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/callback [get]
func (s *Server) authCallback(c *gin.Context) {
	if s.auth == nil {
		c.JSON(503, gin.H{"error": ErrAuthDisabled.Error()})
		return
	}

	state, err := c.Cookie("oauth_state")
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(400, gin.H{"error": "state mismatch"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(400, gin.H{"error": "missing authorization code"})
		return
	}

	token, err := s.auth.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"accessToken":  token.AccessToken,
		"refreshToken": token.RefreshToken,
		"expiry":       token.Expiry,
	})
}
