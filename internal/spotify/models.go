package spotify

import "github.com/mixtape-labs/mixtape/internal/domain"

// Wire formats for the catalog API responses that do not map one-to-one
// onto domain types.

type recommendationsResponse struct {
	Tracks []domain.Track `json:"tracks"`
}

type topTracksResponse struct {
	Items []domain.Track `json:"items"`
}

type searchResponse struct {
	Artists *struct {
		Items []domain.Artist `json:"items"`
	} `json:"artists"`
	Tracks *struct {
		Items []domain.Track `json:"items"`
	} `json:"tracks"`
}

type playlistWire struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Images      []domain.Image `json:"images"`
	URI         string         `json:"uri"`
	Tracks      struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

type playlistPage struct {
	Items []playlistWire `json:"items"`
}

type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapPlaylist(p playlistWire) domain.SavedPlaylist {
	return domain.SavedPlaylist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      p.Images,
		TrackCount:  p.Tracks.Total,
		URI:         p.URI,
	}
}
