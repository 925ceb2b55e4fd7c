package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// catalogFromRequest builds a token-bound catalog client for this request,
// writing a 401 response when no token is supplied.
func (s *Server) catalogFromRequest(c *gin.Context) (CatalogClient, bool) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(401, gin.H{"error": ErrMissingToken.Error()})
		return nil, false
	}
	return s.newCatalog(token), true
}
