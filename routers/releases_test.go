package routers

import (
	"net/http"
	"testing"
	"time"

	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReleases(t *testing.T, releases []models.Release) {
	t.Helper()
	require.NoError(t, files.WriteReleases(releases))
}

func testRelease(id string, artistID string, name string, releaseDate string) models.Release {
	return models.Release{
		ID:          id,
		ArtistID:    artistID,
		ArtistName:  "Artist",
		Name:        name,
		Type:        "single",
		ReleaseDate: releaseDate,
		TotalTracks: 1,
		Tracks:      []models.Track{},
		AddedAt:     time.Now().UTC(),
	}
}

func TestGetReleasesSortedByDateDescending(t *testing.T) {
	router := setupTestServer(t)
	seedReleases(t, []models.Release{
		testRelease("r1", "a1", "Oldest", "2019-03-01"),
		testRelease("r2", "a1", "Unparsable", "someday"),
		testRelease("r3", "a1", "Newest", "2024-06-15"),
		testRelease("r4", "a1", "YearOnly", "2022"),
	})

	recorder, envelope := performRequest(t, router, "GET", "/api/releases", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	listed, ok := envelope["releases"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 4)

	names := []string{}
	for _, item := range listed {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	assert.Equal(t, []string{"Newest", "YearOnly", "Oldest", "Unparsable"}, names)
}

func TestGetRelease(t *testing.T) {
	router := setupTestServer(t)
	seedReleases(t, []models.Release{testRelease("r1", "a1", "Single A", "2024-01-01")})

	recorder, envelope := performRequest(t, router, "GET", "/api/releases/r1", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Single A", envelope["release"].(map[string]any)["name"])

	recorder, envelope = performRequest(t, router, "GET", "/api/releases/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Release not found", envelope["message"])
}

func TestGetArtistReleasesFilters(t *testing.T) {
	router := setupTestServer(t)
	seedReleases(t, []models.Release{
		testRelease("r1", "a1", "Mine", "2024-01-01"),
		testRelease("r2", "a2", "Theirs", "2024-01-01"),
	})

	recorder, envelope := performRequest(t, router, "GET", "/api/releases/artist/a1", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	listed := envelope["releases"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].(map[string]any)["name"])

	// unknown artist id yields an empty list, not a 404
	recorder, envelope = performRequest(t, router, "GET", "/api/releases/artist/nobody", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, envelope["releases"])
}

func TestDeleteRelease(t *testing.T) {
	router := setupTestServer(t)
	seedReleases(t, []models.Release{
		testRelease("r1", "a1", "Single A", "2024-01-01"),
		testRelease("r2", "a1", "Single B", "2024-02-01"),
	})

	recorder, envelope := performRequest(t, router, "DELETE", "/api/releases/r1", nil, adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Single A", envelope["deletedRelease"].(map[string]any)["name"])

	stored, err := files.ReadReleases()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "r2", stored[0].ID)
}

func TestDeleteReleaseNotFound(t *testing.T) {
	router := setupTestServer(t)

	recorder, _ := performRequest(t, router, "DELETE", "/api/releases/missing", nil, adminHeaders())
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteReleaseRequiresAdmin(t *testing.T) {
	router := setupTestServer(t)
	seedReleases(t, []models.Release{testRelease("r1", "a1", "Single A", "2024-01-01")})

	recorder, _ := performRequest(t, router, "DELETE", "/api/releases/r1", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	stored, err := files.ReadReleases()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
