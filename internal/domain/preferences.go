package domain

// Mood holds the optional audio-feature targets, each on a 0-100 scale.
// A nil field means the user did not set that slider and no target
// parameter is emitted for it.
type Mood struct {
	Energy       *int `json:"energy,omitempty"`
	Valence      *int `json:"valence,omitempty"`
	Danceability *int `json:"danceability,omitempty"`
	Acousticness *int `json:"acousticness,omitempty"`
}

// PopularityRange bounds track popularity on a 0-100 scale. Min <= Max is
// expected but not enforced by the type.
type PopularityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PreferenceSet is the user's musical preferences for one generation call.
// All fields are optional; an entirely empty set triggers the generator's
// fallback strategies rather than an error.
type PreferenceSet struct {
	Artists    []Artist        `json:"artists,omitempty"`
	Tracks     []Track         `json:"tracks,omitempty"`
	Genres     []string        `json:"genres,omitempty"`
	Decades    []string        `json:"decades,omitempty"`
	Mood       Mood            `json:"mood"`
	Popularity PopularityRange `json:"popularity"`
}

// NewPreferenceSet fills in the defaults for an incoming preference set.
// Defaults live here rather than at call sites so every consumer sees the
// same shape: a zero popularity range means "unbounded" (0-100).
func NewPreferenceSet(prefs PreferenceSet) PreferenceSet {
	if prefs.Popularity.Min == 0 && prefs.Popularity.Max == 0 {
		prefs.Popularity = PopularityRange{Min: 0, Max: 100}
	}
	return prefs
}

// HasSeeds reports whether the preference set contains any seed material
// (artists, genres or tracks) usable by the recommendation API.
func (p PreferenceSet) HasSeeds() bool {
	return len(p.Artists) > 0 || len(p.Genres) > 0 || len(p.Tracks) > 0
}
