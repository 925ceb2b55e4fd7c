package domain

// Image is album artwork at one resolution.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Artist represents an artist as returned by the catalog API.
type Artist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres,omitempty"`
	Images []Image  `json:"images,omitempty"`
}

// Album holds the subset of album fields the generator consumes.
type Album struct {
	Name        string  `json:"name"`
	Images      []Image `json:"images,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

// Track represents an individual track from the catalog API. ID is stable
// and unique and is the deduplication key for all merge operations.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
	DurationMs int      `json:"duration_ms"`
	Popularity int      `json:"popularity"`
	PreviewURL *string  `json:"preview_url"`
	URI        string   `json:"uri"`
}

// Profile represents the authenticated catalog user.
type Profile struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

// SavedPlaylist represents playlist metadata held by the catalog, as opposed
// to the in-memory playlists this service generates.
type SavedPlaylist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
	TrackCount  int     `json:"track_count"`
	URI         string  `json:"uri,omitempty"`
}
