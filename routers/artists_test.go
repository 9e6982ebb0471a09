package routers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/scalaxyz/hausnation-backend/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addArtistBody() models.AddArtistRequest {
	return models.AddArtistRequest{
		Artist: &models.CatalogArtist{
			ID:         "abc",
			Name:       "Test Artist",
			Genres:     []string{"house"},
			Popularity: 50,
			Followers:  1000,
			SpotifyURL: "https://open.spotify.com/artist/abc",
		},
		SelectedReleases: []models.CatalogRelease{{
			ID:          "r1",
			Name:        "Single A",
			Type:        "single",
			ReleaseDate: "2024-01-01",
			TotalTracks: 1,
		}},
	}
}

func TestAddArtistEndToEnd(t *testing.T) {
	router := setupTestServer(t)

	recorder, envelope := performRequest(t, router, "POST", "/api/artists", addArtistBody(), adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, envelope["success"])

	artist, ok := envelope["artist"].(map[string]any)
	require.True(t, ok)
	artistID, ok := artist["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, artistID)
	assert.Equal(t, "abc", artist["spotifyId"])

	returnedReleases, ok := envelope["releases"].([]any)
	require.True(t, ok)
	require.Len(t, returnedReleases, 1)
	release := returnedReleases[0].(map[string]any)
	assert.NotEmpty(t, release["id"])
	assert.Equal(t, artistID, release["artistId"])
	assert.Equal(t, "Test Artist", release["artistName"])
	assert.Equal(t, "r1", release["spotifyAlbumId"])

	// both collections are persisted
	storedArtists, err := files.ReadArtists()
	require.NoError(t, err)
	require.Len(t, storedArtists, 1)

	storedReleases, err := files.ReadReleases()
	require.NoError(t, err)
	require.Len(t, storedReleases, 1)

	// listing by artist id returns exactly the one release
	recorder, envelope = performRequest(t, router, "GET", "/api/releases/artist/"+artistID, nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	listed, ok := envelope["releases"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)
	assert.Equal(t, "Single A", listed[0].(map[string]any)["name"])
}

func TestAddArtistRejectsDuplicateWithoutMutation(t *testing.T) {
	router := setupTestServer(t)

	recorder, _ := performRequest(t, router, "POST", "/api/artists", addArtistBody(), adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)

	// same spotify id again
	body := addArtistBody()
	body.Artist.Name = "Impostor"
	recorder, envelope := performRequest(t, router, "POST", "/api/artists", body, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Artist already exists in the catalog", envelope["message"])

	storedArtists, err := files.ReadArtists()
	require.NoError(t, err)
	require.Len(t, storedArtists, 1)
	assert.Equal(t, "Test Artist", storedArtists[0].Name)

	storedReleases, err := files.ReadReleases()
	require.NoError(t, err)
	assert.Len(t, storedReleases, 1)
}

func TestAddArtistRequiresBodyFields(t *testing.T) {
	router := setupTestServer(t)

	recorder, _ := performRequest(t, router, "POST", "/api/artists", map[string]any{"artist": nil}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddArtistRequiresAdmin(t *testing.T) {
	router := setupTestServer(t)

	recorder, _ := performRequest(t, router, "POST", "/api/artists", addArtistBody(), nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDeleteArtistCascadesReleases(t *testing.T) {
	router := setupTestServer(t)

	// first artist with one release
	recorder, envelope := performRequest(t, router, "POST", "/api/artists", addArtistBody(), adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)
	firstID := envelope["artist"].(map[string]any)["id"].(string)

	// second artist with one release of its own
	second := addArtistBody()
	second.Artist.ID = "def"
	second.Artist.Name = "Other Artist"
	second.SelectedReleases[0].ID = "r2"
	second.SelectedReleases[0].Name = "Single B"
	recorder, _ = performRequest(t, router, "POST", "/api/artists", second, adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, envelope = performRequest(t, router, "DELETE", "/api/artists/"+firstID, nil, adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Test Artist", envelope["deletedArtist"].(map[string]any)["name"])

	storedArtists, err := files.ReadArtists()
	require.NoError(t, err)
	require.Len(t, storedArtists, 1)
	assert.Equal(t, "Other Artist", storedArtists[0].Name)

	storedReleases, err := files.ReadReleases()
	require.NoError(t, err)
	require.Len(t, storedReleases, 1)
	assert.Equal(t, "Single B", storedReleases[0].Name)
}

func TestDeleteArtistWithoutReleasesLeavesReleasesAlone(t *testing.T) {
	router := setupTestServer(t)

	// artist with a release
	recorder, _ := performRequest(t, router, "POST", "/api/artists", addArtistBody(), adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)

	// artist with no releases
	bare := addArtistBody()
	bare.Artist.ID = "xyz"
	bare.SelectedReleases = []models.CatalogRelease{}
	recorder, envelope := performRequest(t, router, "POST", "/api/artists", bare, adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)
	bareID := envelope["artist"].(map[string]any)["id"].(string)

	recorder, _ = performRequest(t, router, "DELETE", "/api/artists/"+bareID, nil, adminHeaders())
	require.Equal(t, http.StatusOK, recorder.Code)

	storedReleases, err := files.ReadReleases()
	require.NoError(t, err)
	assert.Len(t, storedReleases, 1)
}

func TestDeleteArtistNotFound(t *testing.T) {
	router := setupTestServer(t)

	recorder, _ := performRequest(t, router, "DELETE", "/api/artists/nope", nil, adminHeaders())
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetArtists(t *testing.T) {
	router := setupTestServer(t)

	recorder, envelope := performRequest(t, router, "GET", "/api/artists", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Empty(t, envelope["artists"])

	performRequest(t, router, "POST", "/api/artists", addArtistBody(), adminHeaders())

	recorder, envelope = performRequest(t, router, "GET", "/api/artists", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, envelope["artists"], 1)
}

func TestGetArtistNotFound(t *testing.T) {
	router := setupTestServer(t)

	recorder, envelope := performRequest(t, router, "GET", "/api/artists/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Artist not found", envelope["message"])
}

func newSpotifyDouble(t *testing.T) *modules.SpotifyClient {
	t.Helper()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(tokenServer.Close)

	mux := http.NewServeMux()
	mux.HandleFunc("/artists/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"abc","name":"Proxied Artist","genres":[],"popularity":10,"followers":{"total":5},"images":[],"external_urls":{"spotify":"https://open.spotify.com/artist/abc"}}`)
	})
	mux.HandleFunc("/artists/abc/albums", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	})
	apiServer := httptest.NewServer(mux)
	t.Cleanup(apiServer.Close)

	client := modules.NewSpotifyClient("id", "secret")
	client.TokenURL = tokenServer.URL
	client.APIBaseURL = apiServer.URL
	return client
}

func TestSearchSpotifyProxiesCatalog(t *testing.T) {
	router := setupTestServer(t)
	SetSpotifyClient(newSpotifyDouble(t))

	recorder, envelope := performRequest(t, router, "POST", "/api/artists/search-spotify", models.SearchSpotifyRequest{
		ArtistURL: "https://open.spotify.com/artist/abc",
	}, adminHeaders())

	require.Equal(t, http.StatusOK, recorder.Code)
	catalog, ok := envelope["catalog"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Proxied Artist", catalog["artist"].(map[string]any)["name"])
}

func TestSearchSpotifyRejectsInvalidURL(t *testing.T) {
	router := setupTestServer(t)
	SetSpotifyClient(newSpotifyDouble(t))

	recorder, _ := performRequest(t, router, "POST", "/api/artists/search-spotify", models.SearchSpotifyRequest{
		ArtistURL: "https://example.com/artist/abc",
	}, adminHeaders())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
