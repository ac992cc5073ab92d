package tidy

import "time"

// LimitedTrack is one row of the per-song export files after normalization.
// Numeric and date fields that failed to parse are nil, never a sentinel
// value.
type LimitedTrack struct {
	TrackID     string
	Artists     string
	TrackName   string
	Popularity  *float64
	DurationSec *float64
	ReleaseDate *time.Time
}

// ReferenceTrack is one row of the large reference dataset after
// normalization. The audio-feature columns are not carried; nothing
// downstream of the join consumes them.
type ReferenceTrack struct {
	TrackID     string
	Artists     string
	ReleaseDate *time.Time
	Year        *int
	DurationMS  *float64
}

// JoinedTrack is the analysis unit: the inner join of a reference row and a
// limited row on (track id, canonical artist string), plus the derived
// categorical features. The reference-side duration is dropped in favor of
// the limited side's duration-in-seconds.
type JoinedTrack struct {
	TrackID         string
	Artists         string
	TrackName       string
	Popularity      *float64
	DurationSec     *float64
	ReleaseDate     *time.Time
	Year            *int
	Decade          string
	PopularityRange string
	ArtistCount     int
}
