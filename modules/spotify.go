package modules

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/models"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSpotifyAuth means the client-credentials exchange failed.
	ErrSpotifyAuth = errors.New("failed to authenticate with Spotify")
	// ErrInvalidArtistURL means the input is neither a Spotify artist URL nor a bare id.
	ErrInvalidArtistURL = errors.New("invalid Spotify artist URL or ID")
)

var artistURLPattern = regexp.MustCompile(`spotify\.com/artist/([a-zA-Z0-9]+)`)
var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// SpotifyClient talks to the Spotify Web API with a client-credentials
// session. The access token is cached on the client and refreshed lazily
// once its expiry has passed.
type SpotifyClient struct {
	ClientID     string
	ClientSecret string
	HTTP         *http.Client
	TokenURL     string
	APIBaseURL   string

	tokenMutex  sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// create new Spotify client with the configured application credentials
func NewSpotifyClient(clientID string, clientSecret string) *SpotifyClient {
	return &SpotifyClient{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTP:         &http.Client{Timeout: 15 * time.Second},
		TokenURL:     "https://accounts.spotify.com/api/token",
		APIBaseURL:   "https://api.spotify.com/v1",
	}
}

// GetAccessToken returns the cached token while it is unexpired, otherwise
// performs one client-credentials exchange and caches the result.
func (c *SpotifyClient) GetAccessToken() (string, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest("POST", c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.ClientID+":"+c.ClientSecret)))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		logger.Log.Error("spotify auth request failed. error: " + err.Error())
		return "", ErrSpotifyAuth
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		logger.Log.Error("spotify auth returned " + resp.Status + ": " + strings.TrimSpace(string(b)))
		return "", ErrSpotifyAuth
	}

	var tokenResponse models.SpotifyTokenResponse
	err = json.NewDecoder(resp.Body).Decode(&tokenResponse)
	if err != nil {
		logger.Log.Error("failed to parse spotify token response. error: " + err.Error())
		return "", ErrSpotifyAuth
	}

	c.accessToken = tokenResponse.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second)

	logger.Log.Debug("new spotify access token cached")

	return c.accessToken, nil
}

// ExtractArtistID accepts a full Spotify artist URL or a bare id and
// returns the id.
func (c *SpotifyClient) ExtractArtistID(artistURL string) (string, error) {
	if match := artistURLPattern.FindStringSubmatch(artistURL); match != nil {
		return match[1], nil
	}
	if bareIDPattern.MatchString(artistURL) {
		return artistURL, nil
	}

	return "", ErrInvalidArtistURL
}

// getJSON retrieves a Spotify API path with a bearer token and decodes the
// response into dst.
func (c *SpotifyClient) getJSON(pathWithQuery string, dst any) error {
	token, err := c.GetAccessToken()
	if err != nil {
		return err
	}

	req, err := http.NewRequest("GET", c.APIBaseURL+pathWithQuery, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("spotify %s -> %d: %s", pathWithQuery, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// GetArtist fetches artist metadata and maps it to the catalog shape.
func (c *SpotifyClient) GetArtist(artistURL string) (models.CatalogArtist, error) {
	var artist models.CatalogArtist

	artistID, err := c.ExtractArtistID(artistURL)
	if err != nil {
		return artist, err
	}

	var response models.SpotifyArtistResponse
	if err := c.getJSON("/artists/"+artistID, &response); err != nil {
		logger.Log.Error("failed to fetch artist from spotify. error: " + err.Error())
		return artist, errors.New("failed to fetch artist from Spotify")
	}

	artist = models.CatalogArtist{
		ID:         response.ID,
		Name:       response.Name,
		Image:      firstImageURL(response.Images),
		Genres:     response.Genres,
		Popularity: response.Popularity,
		Followers:  response.Followers.Total,
		SpotifyURL: response.ExternalURLs["spotify"],
	}

	return artist, nil
}

// GetArtistReleases fetches up to 50 albums, singles and appearances for
// the artist, without track listings.
func (c *SpotifyClient) GetArtistReleases(artistURL string) ([]models.CatalogRelease, error) {
	artistID, err := c.ExtractArtistID(artistURL)
	if err != nil {
		return nil, err
	}

	var response models.SpotifyAlbumsResponse
	query := "/artists/" + artistID + "/albums?include_groups=album,single,appears_on&limit=50"
	if err := c.getJSON(query, &response); err != nil {
		logger.Log.Error("failed to fetch releases from spotify. error: " + err.Error())
		return nil, errors.New("failed to fetch releases from Spotify")
	}

	releases := []models.CatalogRelease{}
	for _, item := range response.Items {
		releases = append(releases, models.CatalogRelease{
			ID:          item.ID,
			Name:        item.Name,
			Type:        item.AlbumType,
			ReleaseDate: item.ReleaseDate,
			TotalTracks: item.TotalTracks,
			Image:       firstImageURL(item.Images),
			SpotifyURL:  item.ExternalURLs["spotify"],
		})
	}

	return releases, nil
}

// GetAlbumTracks fetches the track listing for one release.
func (c *SpotifyClient) GetAlbumTracks(albumID string) ([]models.Track, error) {
	var response models.SpotifyTracksResponse
	if err := c.getJSON("/albums/"+albumID+"/tracks", &response); err != nil {
		logger.Log.Error("failed to fetch tracks from spotify. error: " + err.Error())
		return nil, errors.New("failed to fetch tracks from Spotify")
	}

	tracks := []models.Track{}
	for _, item := range response.Items {
		tracks = append(tracks, models.Track{
			ID:          item.ID,
			Name:        item.Name,
			TrackNumber: item.TrackNumber,
			Duration:    item.DurationMS,
			PreviewURL:  item.PreviewURL,
			SpotifyURL:  item.ExternalURLs["spotify"],
		})
	}

	return tracks, nil
}

// GetFullCatalog fetches the artist, its releases, then the track listing
// for every release concurrently. One failed track fetch fails the whole
// aggregate.
func (c *SpotifyClient) GetFullCatalog(artistURL string) (models.FullCatalog, error) {
	var catalog models.FullCatalog

	artist, err := c.GetArtist(artistURL)
	if err != nil {
		return catalog, err
	}

	releases, err := c.GetArtistReleases(artistURL)
	if err != nil {
		return catalog, err
	}

	var group errgroup.Group
	for i := range releases {
		i := i
		group.Go(func() error {
			tracks, err := c.GetAlbumTracks(releases[i].ID)
			if err != nil {
				return err
			}
			releases[i].Tracks = tracks
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return catalog, err
	}

	catalog.Artist = artist
	catalog.Releases = releases

	return catalog, nil
}

func firstImageURL(images []models.SpotifyImage) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0].URL
}
