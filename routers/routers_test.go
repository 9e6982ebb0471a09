package routers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/middleware"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminUsername = "admin"
const testAdminPassword = "Password123"

// setupTestServer points the store and config at temp directories, seeds the
// admin credential and returns an engine with the full route table.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	files.SetDataPath(t.TempDir())
	files.SetConfigPath(t.TempDir())
	require.NoError(t, files.InitDataFiles())

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, files.WriteAdmin(models.AdminCredential{
		Username: testAdminUsername,
		Password: string(hash),
	}))

	router := gin.New()

	router.GET("/", APIIndex)

	api := router.Group("/api")
	{
		api.GET("/health", APIHealth)

		auth := api.Group("/auth")
		{
			auth.POST("/login", APILogin)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", APIGetArtists)
			artists.GET("/:id", APIGetArtist)
			artists.POST("/search-spotify", middleware.ValidateAdminSession(), APISearchSpotify)
			artists.POST("", middleware.ValidateAdminSession(), APIAddArtist)
			artists.DELETE("/:id", middleware.ValidateAdminSession(), APIDeleteArtist)
		}

		releases := api.Group("/releases")
		{
			releases.GET("", APIGetReleases)
			releases.GET("/:id", APIGetRelease)
			releases.GET("/artist/:artistId", APIGetArtistReleases)
			releases.DELETE("/:id", middleware.ValidateAdminSession(), APIDeleteRelease)
		}

		api.POST("/contact", middleware.VerifyRecaptcha(), APIContact)
	}

	router.NoRoute(APINotFound)

	return router
}

// performRequest runs one request against the engine and decodes the JSON
// envelope into a generic map.
func performRequest(t *testing.T, router *gin.Engine, method string, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	envelope := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}

	return recorder, envelope
}

func adminHeaders() map[string]string {
	// raw admin secret as bearer, exercising the hash-comparison fallback
	return map[string]string{"Authorization": "Bearer " + testAdminPassword}
}
