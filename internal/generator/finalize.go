package generator

import "github.com/mixtape-labs/mixtape/internal/domain"

// ShuffleTracks returns a uniformly shuffled copy of tracks using the
// Fisher-Yates algorithm. The input slice is never mutated.
func ShuffleTracks(tracks []domain.Track, rng Randomizer) []domain.Track {
	shuffled := make([]domain.Track, len(tracks))
	copy(shuffled, tracks)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Finalize shuffles the accumulated tracks and truncates them to limit.
// Shuffling the whole accumulator after the merge, rather than per stage,
// avoids a systematic ordering bias toward whichever stage ran first.
func Finalize(tracks []domain.Track, limit int, rng Randomizer) []domain.Track {
	shuffled := ShuffleTracks(tracks, rng)
	if len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}
