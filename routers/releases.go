package routers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/scalaxyz/hausnation-backend/utilities"
)

// APIGetReleases lists every release, newest release date first. Public.
func APIGetReleases(context *gin.Context) {
	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch releases"})
		return
	}

	sort.SliceStable(releases, func(i, j int) bool {
		dateI, errI := utilities.ParseReleaseDate(releases[i].ReleaseDate)
		dateJ, errJ := utilities.ParseReleaseDate(releases[j].ReleaseDate)

		// unparsable dates sort last
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}

		return dateI.After(dateJ)
	})

	context.JSON(http.StatusOK, gin.H{"success": true, "releases": releases})
}

// APIGetRelease returns one release by id. Public.
func APIGetRelease(context *gin.Context) {
	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch release"})
		return
	}

	for _, release := range releases {
		if release.ID == context.Param("id") {
			context.JSON(http.StatusOK, gin.H{"success": true, "release": release})
			return
		}
	}

	context.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Release not found"})
}

// APIGetArtistReleases lists every release belonging to one artist. Public.
func APIGetArtistReleases(context *gin.Context) {
	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch artist releases"})
		return
	}

	artistReleases := []models.Release{}
	for _, release := range releases {
		if release.ArtistID == context.Param("artistId") {
			artistReleases = append(artistReleases, release)
		}
	}

	context.JSON(http.StatusOK, gin.H{"success": true, "releases": artistReleases})
}

// APIDeleteRelease removes one release. Admin only.
func APIDeleteRelease(context *gin.Context) {
	releaseID := context.Param("id")

	releases, err := files.ReadReleases()
	if err != nil {
		logger.Log.Error("failed to read releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete release"})
		return
	}

	var deletedRelease *models.Release
	updatedReleases := []models.Release{}
	for _, release := range releases {
		release := release
		if release.ID == releaseID {
			deletedRelease = &release
			continue
		}
		updatedReleases = append(updatedReleases, release)
	}

	if deletedRelease == nil {
		context.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Release not found"})
		return
	}

	err = files.WriteReleases(updatedReleases)
	if err != nil {
		logger.Log.Error("failed to write releases. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete release"})
		return
	}

	context.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Release deleted successfully",
		"deletedRelease": deletedRelease,
	})
}
