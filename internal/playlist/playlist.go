package playlist

import (
	"time"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

// Playlist is one generated playlist session held in memory. The tracks are
// a copy of the generator's output; the generator itself never mutates a
// playlist after handing it over.
type Playlist struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	CreatedAt   time.Time            `json:"createdAt"`
	Preferences domain.PreferenceSet `json:"preferences"`
	Tracks      []domain.Track       `json:"tracks"`
}

// AddMore appends the tracks from batch whose ids are not already present.
// Returns how many were actually appended.
func (p *Playlist) AddMore(batch []domain.Track) int {
	existing := make(map[string]struct{}, len(p.Tracks))
	for _, track := range p.Tracks {
		existing[track.ID] = struct{}{}
	}

	added := 0
	for _, track := range batch {
		if _, ok := existing[track.ID]; ok {
			continue
		}
		existing[track.ID] = struct{}{}
		p.Tracks = append(p.Tracks, track)
		added++
	}
	return added
}

// Remove deletes the track with the given id. Returns false if no track
// with that id is present.
func (p *Playlist) Remove(trackID string) bool {
	for i, track := range p.Tracks {
		if track.ID == trackID {
			p.Tracks = append(p.Tracks[:i], p.Tracks[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder replaces the track sequence wholesale with the caller-supplied
// order. The sequence is not validated as a permutation of the current set;
// the drag-and-drop client is trusted to send back the same tracks.
func (p *Playlist) Reorder(tracks []domain.Track) {
	p.Tracks = tracks
}

// Replace swaps in a freshly generated track list, used by refresh.
func (p *Playlist) Replace(tracks []domain.Track) {
	p.Tracks = tracks
}
