package generator

import "math/rand"

// FallbackGenres is the fixed vocabulary of broadly popular genres used by
// the genre-fallback stage.
var FallbackGenres = []string{"pop", "rock", "indie", "electronic", "hip-hop", "jazz", "classical"}

// fallbackGenreCount is how many genres the fallback stage seeds with.
const fallbackGenreCount = 3

// Randomizer abstracts the random source so tests can substitute a
// deterministic sequence.
type Randomizer interface {
	Intn(n int) int
}

// systemRandomizer uses the shared math/rand source, which is safe for
// concurrent use across requests.
type systemRandomizer struct{}

func (systemRandomizer) Intn(n int) int { return rand.Intn(n) }

// NewRandomizer returns the default non-deterministic randomizer.
func NewRandomizer() Randomizer {
	return systemRandomizer{}
}

// pickFallbackGenres draws count genres uniformly without replacement from
// the fallback vocabulary.
func pickFallbackGenres(rng Randomizer, count int) []string {
	pool := make([]string, len(FallbackGenres))
	copy(pool, FallbackGenres)

	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j := rng.Intn(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return picked
}
