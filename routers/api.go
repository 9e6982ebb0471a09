package routers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/modules"
)

// spotifyClient is the shared client-credentials session, set once at boot.
var spotifyClient *modules.SpotifyClient

// SetSpotifyClient wires the catalog provider session used by the artist
// routes. Tests point it at a doubled provider.
func SetSpotifyClient(client *modules.SpotifyClient) {
	spotifyClient = client
}

func APIHealth(context *gin.Context) {
	context.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Hausnation API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func APIIndex(context *gin.Context) {
	context.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to Hausnation API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":   "/api/health",
			"auth":     "/api/auth/login",
			"artists":  "/api/artists",
			"releases": "/api/releases",
			"contact":  "/api/contact",
		},
	})
}

func APINotFound(context *gin.Context) {
	context.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Endpoint not found",
	})
}
