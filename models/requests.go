package models

// Request bodies for the API, one explicit struct per endpoint.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SearchSpotifyRequest struct {
	ArtistURL string `json:"artistUrl"`
}

type AddArtistRequest struct {
	Artist           *CatalogArtist   `json:"artist"`
	SelectedReleases []CatalogRelease `json:"selectedReleases"`
}

type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}
