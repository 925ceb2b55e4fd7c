package generator

import "github.com/mixtape-labs/mixtape/internal/domain"

// The recommendation API accepts at most 5 seeds per query across all three
// seed kinds. The primary query stays under that with 2 artists + 2 genres +
// 1 track so the fan-out queries have room to vary the combination.
const maxSeedsPerQuery = 5

// SeedQuery is one seed combination for a single recommendation request.
type SeedQuery struct {
	Artists []string
	Genres  []string
	Tracks  []string
}

// SelectSeeds derives up to three seed queries from the preference set.
// Selection is pure truncation in insertion order: earliest-added
// preferences win, there is no scoring. The fixed three-tier fan-out trades
// exhaustive combinations for a bounded number of concurrent upstream calls.
// An empty preference set yields no queries; the orchestrator falls through
// to its fallback stages.
func SelectSeeds(prefs domain.PreferenceSet) []SeedQuery {
	if !prefs.HasSeeds() {
		return nil
	}

	artists := make([]string, 0, len(prefs.Artists))
	for _, artist := range prefs.Artists {
		artists = append(artists, artist.ID)
	}
	tracks := make([]string, 0, len(prefs.Tracks))
	for _, track := range prefs.Tracks {
		tracks = append(tracks, track.ID)
	}
	genres := prefs.Genres

	queries := []SeedQuery{{
		Artists: takeFirst(artists, 2),
		Genres:  takeFirst(genres, 2),
		Tracks:  takeFirst(tracks, 1),
	}}

	// Variation query: when there is more seed material than one query can
	// hold, gather a second batch with a broader artist slice and the
	// genres the primary query skipped. A tracks-heavy set can leave this
	// combination empty; a zero-seed query is rejected upstream, so it is
	// not worth dispatching.
	if len(artists)+len(genres)+len(tracks) > maxSeedsPerQuery {
		variation := SeedQuery{
			Artists: takeFirst(artists, 3),
			Genres:  slice(genres, 2, 4),
		}
		if variation.SeedCount() > 0 {
			queries = append(queries, variation)
		}
	}

	// Diversifier query: extra genres paired with the top artists.
	if len(genres) > 2 {
		queries = append(queries, SeedQuery{
			Artists: takeFirst(artists, 2),
			Genres:  slice(genres, 2, 4),
		})
	}

	return queries
}

// SeedCount returns the total number of seeds across all three kinds.
func (q SeedQuery) SeedCount() int {
	return len(q.Artists) + len(q.Genres) + len(q.Tracks)
}

func takeFirst(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return nil
	}
	return values[:n]
}

func slice(values []string, from, to int) []string {
	if from >= len(values) {
		return nil
	}
	if to > len(values) {
		to = len(values)
	}
	return values[from:to]
}
