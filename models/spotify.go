package models

// Shapes returned by the Spotify Web API, reduced to the fields we map.

type SpotifyTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type SpotifyArtistResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
	Images       []SpotifyImage    `json:"images"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type SpotifyAlbumsResponse struct {
	Items []SpotifyAlbumItem `json:"items"`
}

type SpotifyAlbumItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	AlbumType    string            `json:"album_type"`
	ReleaseDate  string            `json:"release_date"`
	TotalTracks  int               `json:"total_tracks"`
	Images       []SpotifyImage    `json:"images"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type SpotifyTracksResponse struct {
	Items []SpotifyTrackItem `json:"items"`
}

type SpotifyTrackItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	TrackNumber  int               `json:"track_number"`
	DurationMS   int               `json:"duration_ms"`
	PreviewURL   *string           `json:"preview_url"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// CatalogArtist is the mapped artist shape returned by the catalog search,
// before an id is generated for persistence.
type CatalogArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      *string  `json:"image"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  int      `json:"followers"`
	SpotifyURL string   `json:"spotifyUrl"`
}

// CatalogRelease is a mapped release from the catalog search. Tracks is
// empty until GetFullCatalog fills it in.
type CatalogRelease struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	ReleaseDate string  `json:"releaseDate"`
	TotalTracks int     `json:"totalTracks"`
	Image       *string `json:"image"`
	SpotifyURL  string  `json:"spotifyUrl"`
	Tracks      []Track `json:"tracks"`
}

type FullCatalog struct {
	Artist   CatalogArtist    `json:"artist"`
	Releases []CatalogRelease `json:"releases"`
}

type RecaptchaVerifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}
