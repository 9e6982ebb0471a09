package models

import "time"

// Artist is a catalog artist as persisted in artists.json.
// SpotifyID must be unique across the collection.
type Artist struct {
	ID         string    `json:"id"`
	SpotifyID  string    `json:"spotifyId"`
	Name       string    `json:"name"`
	Image      *string   `json:"image"`
	Genres     []string  `json:"genres"`
	Popularity int       `json:"popularity"`
	Followers  int       `json:"followers"`
	SpotifyURL string    `json:"spotifyUrl"`
	AddedAt    time.Time `json:"addedAt"`
}

// Release is a persisted release. ArtistID references an Artist; deleting
// an artist removes its releases as well.
type Release struct {
	ID             string    `json:"id"`
	ArtistID       string    `json:"artistId"`
	ArtistName     string    `json:"artistName"`
	SpotifyAlbumID string    `json:"spotifyAlbumId"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	ReleaseDate    string    `json:"releaseDate"`
	TotalTracks    int       `json:"totalTracks"`
	Image          *string   `json:"image"`
	SpotifyURL     string    `json:"spotifyUrl"`
	Tracks         []Track   `json:"tracks"`
	AddedAt        time.Time `json:"addedAt"`
}

// Track is embedded in a release, never persisted on its own.
type Track struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TrackNumber int     `json:"trackNumber"`
	Duration    int     `json:"duration"`
	PreviewURL  *string `json:"previewUrl"`
	SpotifyURL  string  `json:"spotifyUrl"`
}

// AdminCredential is the single admin identity stored in admin.json.
// Password holds a bcrypt hash, never the plain text.
type AdminCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
