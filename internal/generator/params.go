package generator

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

// BuildTargetParams converts the preference set's mood sliders, popularity
// range and decade selection into the target parameter encoding the
// recommendation API expects. Pure and deterministic; now is injected so
// tests can pin the current year.
//
// Mood fields arrive as 0-100 integers and map to fractional 0-1 targets.
// Absent fields emit nothing: the API treats a present target as a soft
// constraint, so no default is substituted.
func BuildTargetParams(prefs domain.PreferenceSet, now time.Time) map[string]string {
	params := make(map[string]string)

	if prefs.Mood.Energy != nil {
		params["target_energy"] = formatFraction(*prefs.Mood.Energy)
	}
	if prefs.Mood.Valence != nil {
		params["target_valence"] = formatFraction(*prefs.Mood.Valence)
	}
	if prefs.Mood.Danceability != nil {
		params["target_danceability"] = formatFraction(*prefs.Mood.Danceability)
	}
	if prefs.Mood.Acousticness != nil {
		params["target_acousticness"] = formatFraction(*prefs.Mood.Acousticness)
	}

	// Boundary values equal to the full range are omitted so an unnarrowed
	// slider does not constrain the upstream query.
	if prefs.Popularity.Min > 0 {
		params["min_popularity"] = strconv.Itoa(prefs.Popularity.Min)
	}
	if prefs.Popularity.Max < 100 {
		params["max_popularity"] = strconv.Itoa(prefs.Popularity.Max)
	}

	if minYear, maxYear, ok := decadeBounds(prefs.Decades, now); ok {
		params["min_release_date"] = fmt.Sprintf("%d-01-01", minYear)
		params["max_release_date"] = fmt.Sprintf("%d-12-31", maxYear)
	}

	return params
}

// decadeBounds computes the release-date window spanned by the selected
// decades. The upper bound is the last year of the latest decade, clamped
// to the current calendar year. Decade values that fail to parse are
// skipped with a warning rather than aborting the whole mapping.
func decadeBounds(decades []string, now time.Time) (int, int, bool) {
	minYear, maxYear := 0, 0
	found := false

	for _, decade := range decades {
		year, err := strconv.Atoi(strings.TrimSpace(decade))
		if err != nil {
			slog.Warn("Skipping malformed decade value", "decade", decade)
			continue
		}
		if !found || year < minYear {
			minYear = year
		}
		if !found || year > maxYear {
			maxYear = year
		}
		found = true
	}

	if !found {
		return 0, 0, false
	}

	maxYear += 9
	if currentYear := now.Year(); maxYear > currentYear {
		maxYear = currentYear
	}
	return minYear, maxYear, true
}

func formatFraction(value int) string {
	return strconv.FormatFloat(float64(value)/100, 'f', -1, 64)
}
