package tidy

import (
	"fmt"
	"math"
)

// DecadeLabels is the fixed ordered set of decade buckets. The labels are
// contiguous and exhaustive over representable years, so every year falls
// in exactly one bucket.
var DecadeLabels = []string{
	"1950-",
	"1950 - 1960",
	"1960 - 1970",
	"1970 - 1980",
	"1980 - 1990",
	"1990 - 2000",
	"2000 - 2010",
	"2010 - 2020",
	"2020+",
}

// PopularityLabels is the fixed ordered set of popularity range buckets
// over [0, 100].
var PopularityLabels = []string{
	"0-10", "11-20", "21-30", "31-40", "41-50",
	"51-60", "61-70", "71-80", "81-90", "91-100",
}

// DecadeBucket maps a release year to its decade label. Lower bounds are
// inclusive: 2010 maps to "2010 - 2020", not "2000 - 2010".
func DecadeBucket(year int) string {
	switch {
	case year < 1950:
		return "1950-"
	case year >= 2020:
		return "2020+"
	}
	lo := (year / 10) * 10
	return fmt.Sprintf("%d - %d", lo, lo+10)
}

// PopularityBucket maps a popularity score to one of the ten range labels.
// Scores at most 10 map to "0-10"; above that a score falls in the bucket
// whose range is (lower, upper] by tens, so 20 maps to "11-20" and a
// fractional 10.5 lands in "11-20". Scores outside [0, 100] get no bucket:
// ok is false and the record is excluded from bucketing rather than
// clamped, so out-of-range data stays visible instead of being invented
// into the nearest range.
func PopularityBucket(p float64) (label string, ok bool) {
	if p < 0 || p > 100 {
		return "", false
	}
	if p <= 10 {
		return "0-10", true
	}
	hi := int(math.Ceil(p/10)) * 10
	return fmt.Sprintf("%d-%d", hi-9, hi), true
}

// DeriveFeatures fills the categorical features on every row in place:
// decade bucket from the release year, popularity range from the score,
// and artist count from the canonical artist string. Each derivation is a
// pure function of its row. Rows whose popularity is missing or out of
// range keep an empty range label and are counted in the return value;
// rows with no parsed year keep an empty decade label.
func DeriveFeatures(tracks []JoinedTrack) (unbucketed int) {
	for i := range tracks {
		t := &tracks[i]
		if t.Year != nil {
			t.Decade = DecadeBucket(*t.Year)
		}
		if t.Popularity != nil {
			if label, ok := PopularityBucket(*t.Popularity); ok {
				t.PopularityRange = label
			} else {
				unbucketed++
			}
		} else {
			unbucketed++
		}
		t.ArtistCount = ArtistCount(t.Artists)
	}
	return unbucketed
}
