package routers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/scalaxyz/hausnation-backend/modules"
)

// APIGetArtists lists every artist in the catalog. Public.
func APIGetArtists(context *gin.Context) {
	artists, err := files.ReadArtists()
	if err != nil {
		logger.Log.Error("failed to read artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch artists"})
		return
	}

	context.JSON(http.StatusOK, gin.H{"success": true, "artists": artists})
}

// APIGetArtist returns one artist by id. Public.
func APIGetArtist(context *gin.Context) {
	artists, err := files.ReadArtists()
	if err != nil {
		logger.Log.Error("failed to read artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch artist"})
		return
	}

	for _, artist := range artists {
		if artist.ID == context.Param("id") {
			context.JSON(http.StatusOK, gin.H{"success": true, "artist": artist})
			return
		}
	}

	context.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artist not found"})
}

// APISearchSpotify fetches the full catalog for a Spotify artist URL. Admin only.
func APISearchSpotify(context *gin.Context) {
	var request models.SearchSpotifyRequest
	if err := context.ShouldBindJSON(&request); err != nil || request.ArtistURL == "" {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Artist URL is required"})
		return
	}

	catalog, err := spotifyClient.GetFullCatalog(request.ArtistURL)
	if err != nil {
		if errors.Is(err, modules.ErrInvalidArtistURL) {
			context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		logger.Log.Error("spotify search failed. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	context.JSON(http.StatusOK, gin.H{"success": true, "catalog": catalog})
}

// APIAddArtist creates an artist together with its selected releases. Admin only.
func APIAddArtist(context *gin.Context) {
	var request models.AddArtistRequest
	if err := context.ShouldBindJSON(&request); err != nil || request.Artist == nil || request.SelectedReleases == nil {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Artist info and selected releases are required"})
		return
	}

	artists, err := files.ReadArtists()
	if err != nil {
		logger.Log.Error("failed to read artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add artist"})
		return
	}

	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add artist"})
		return
	}

	// reject duplicates before any file mutation
	for _, artist := range artists {
		if artist.SpotifyID == request.Artist.ID {
			context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Artist already exists in the catalog"})
			return
		}
	}

	now := time.Now().UTC()

	newArtist := models.Artist{
		ID:         files.GenerateID(),
		SpotifyID:  request.Artist.ID,
		Name:       request.Artist.Name,
		Image:      request.Artist.Image,
		Genres:     request.Artist.Genres,
		Popularity: request.Artist.Popularity,
		Followers:  request.Artist.Followers,
		SpotifyURL: request.Artist.SpotifyURL,
		AddedAt:    now,
	}

	newReleases := []models.Release{}
	for _, release := range request.SelectedReleases {
		tracks := release.Tracks
		if tracks == nil {
			tracks = []models.Track{}
		}
		newReleases = append(newReleases, models.Release{
			ID:             files.GenerateID(),
			ArtistID:       newArtist.ID,
			ArtistName:     newArtist.Name,
			SpotifyAlbumID: release.ID,
			Name:           release.Name,
			Type:           release.Type,
			ReleaseDate:    release.ReleaseDate,
			TotalTracks:    release.TotalTracks,
			Image:          release.Image,
			SpotifyURL:     release.SpotifyURL,
			Tracks:         tracks,
			AddedAt:        now,
		})
	}

	// two sequential writes, no transaction boundary across the files
	err = files.WriteArtists(append(artists, newArtist))
	if err != nil {
		logger.Log.Error("failed to write artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add artist"})
		return
	}

	err = files.WriteReleases(append(releases, newReleases...))
	if err != nil {
		logger.Log.Error("failed to write releases, artist was saved without them. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add artist"})
		return
	}

	context.JSON(http.StatusOK, gin.H{
		"success":  true,
		"artist":   newArtist,
		"releases": newReleases,
		"message":  "Artist and releases added successfully",
	})
}

// APIDeleteArtist removes an artist and every release referencing it. Admin only.
func APIDeleteArtist(context *gin.Context) {
	artistID := context.Param("id")

	artists, err := files.ReadArtists()
	if err != nil {
		logger.Log.Error("failed to read artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artist"})
		return
	}

	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artist"})
		return
	}

	var deletedArtist *models.Artist
	updatedArtists := []models.Artist{}
	for _, artist := range artists {
		artist := artist
		if artist.ID == artistID {
			deletedArtist = &artist
			continue
		}
		updatedArtists = append(updatedArtists, artist)
	}

	if deletedArtist == nil {
		context.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artist not found"})
		return
	}

	updatedReleases := []models.Release{}
	for _, release := range releases {
		if release.ArtistID != artistID {
			updatedReleases = append(updatedReleases, release)
		}
	}

	err = files.WriteArtists(updatedArtists)
	if err != nil {
		logger.Log.Error("failed to write artists. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artist"})
		return
	}

	err = files.WriteReleases(updatedReleases)
	if err != nil {
		logger.Log.Error("failed to write releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artist"})
		return
	}

	context.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Artist and their releases deleted successfully",
		"deletedArtist": deletedArtist,
	})
}
