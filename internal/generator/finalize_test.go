package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

// stubRandomizer returns a fixed sequence of values, wrapping around when
// exhausted. Values are taken modulo n to stay in range.
type stubRandomizer struct {
	values []int
	pos    int
}

func (s *stubRandomizer) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func TestShuffleTracksDoesNotMutateInput(t *testing.T) {
	original := tracks("a", "b", "c", "d", "e")
	input := make([]domain.Track, len(original))
	copy(input, original)

	ShuffleTracks(input, &stubRandomizer{values: []int{0, 1, 0, 1}})

	assert.Equal(t, original, input)
}

func TestShuffleTracksIsPermutation(t *testing.T) {
	input := tracks("a", "b", "c", "d", "e")

	shuffled := ShuffleTracks(input, NewRandomizer())

	assert.ElementsMatch(t, input, shuffled)
}

func TestShuffleTracksDeterministicWithStub(t *testing.T) {
	input := tracks("a", "b", "c")

	// j is always 0: i=2 swaps with 0, then i=1 swaps with 0
	shuffled := ShuffleTracks(input, &stubRandomizer{values: []int{0}})

	assert.Equal(t, tracks("b", "c", "a"), shuffled)
}

func TestFinalizeTruncates(t *testing.T) {
	input := make([]domain.Track, 50)
	for i := range input {
		input[i] = domain.Track{ID: string(rune('a' + i))}
	}

	final := Finalize(input, 30, NewRandomizer())

	assert.Len(t, final, 30)
}

func TestFinalizeKeepsShortListsIntact(t *testing.T) {
	input := tracks("a", "b", "c")

	final := Finalize(input, 30, NewRandomizer())

	assert.ElementsMatch(t, input, final)
}

func TestPickFallbackGenresWithoutReplacement(t *testing.T) {
	picked := pickFallbackGenres(NewRandomizer(), 3)

	assert.Len(t, picked, 3)

	seen := make(map[string]bool)
	for _, genre := range picked {
		assert.False(t, seen[genre], "genre %s picked twice", genre)
		seen[genre] = true
		assert.Contains(t, FallbackGenres, genre)
	}
}

func TestPickFallbackGenresCappedAtVocabulary(t *testing.T) {
	picked := pickFallbackGenres(NewRandomizer(), 100)

	assert.ElementsMatch(t, FallbackGenres, picked)
}
