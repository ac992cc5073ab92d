package tidy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akempf/spotify-data-tools/internal/dataset"
)

// ParseStats counts cell-level parse failures per column. A malformed cell
// never aborts the pipeline — the value becomes nil and the failure is
// counted here so data quality stays visible.
type ParseStats struct {
	Rows          int
	BadPopularity int
	BadDuration   int
	BadDate       int
	BadYear       int
}

// Failures is the total number of cells that failed to parse.
func (s ParseStats) Failures() int {
	return s.BadPopularity + s.BadDuration + s.BadDate + s.BadYear
}

// NormalizeLimited converts the concatenated text-only export table into
// typed records. Artist strings are canonicalized, duration is derived as
// milliseconds / 1000, and the track/artist/id columns take the reference
// dataset's naming so the join key lines up.
func NormalizeLimited(table *dataset.Table) ([]LimitedTrack, ParseStats, error) {
	columns, err := findColumns(table, "limited dataset",
		"Popularity", "Artist Name(s)", "Track Name", "Duration (ms)", "Release Date", "Track ID")
	if err != nil {
		return nil, ParseStats{}, err
	}

	var stats ParseStats
	tracks := make([]LimitedTrack, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats.Rows++
		track := LimitedTrack{
			TrackID:   strings.TrimSpace(row[columns["Track ID"]]),
			Artists:   CanonicalArtists(row[columns["Artist Name(s)"]]),
			TrackName: row[columns["Track Name"]],
		}

		if v, ok := parseFloat(row[columns["Popularity"]]); ok {
			track.Popularity = &v
		} else {
			stats.BadPopularity++
		}

		if ms, ok := parseFloat(row[columns["Duration (ms)"]]); ok {
			sec := ms / 1000
			track.DurationSec = &sec
		} else {
			stats.BadDuration++
		}

		if d, ok := parseReleaseDate(row[columns["Release Date"]]); ok {
			track.ReleaseDate = &d
		} else {
			stats.BadDate++
		}

		tracks = append(tracks, track)
	}
	return tracks, stats, nil
}

// NormalizeReference converts the reference table into typed records,
// keeping only the columns the join and the feature derivations consume.
func NormalizeReference(table *dataset.Table) ([]ReferenceTrack, ParseStats, error) {
	columns, err := findColumns(table, "reference dataset",
		"id", "artists", "release_date", "year", "duration_ms")
	if err != nil {
		return nil, ParseStats{}, err
	}

	var stats ParseStats
	tracks := make([]ReferenceTrack, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats.Rows++
		track := ReferenceTrack{
			TrackID: strings.TrimSpace(row[columns["id"]]),
			Artists: CanonicalArtists(row[columns["artists"]]),
		}

		if y, err := strconv.Atoi(strings.TrimSpace(row[columns["year"]])); err == nil {
			track.Year = &y
		} else {
			stats.BadYear++
		}

		if ms, ok := parseFloat(row[columns["duration_ms"]]); ok {
			track.DurationMS = &ms
		} else {
			stats.BadDuration++
		}

		if d, ok := parseReleaseDate(row[columns["release_date"]]); ok {
			track.ReleaseDate = &d
		} else {
			stats.BadDate++
		}

		tracks = append(tracks, track)
	}
	return tracks, stats, nil
}

func findColumns(table *dataset.Table, which string, names ...string) (map[string]int, error) {
	columns := make(map[string]int, len(names))
	for _, name := range names {
		i := table.Column(name)
		if i < 0 {
			return nil, fmt.Errorf("%s: column %q missing", which, name)
		}
		columns[name] = i
	}
	return columns, nil
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// parseReleaseDate accepts the three precisions the sources use: full date,
// year-month, and bare year.
func parseReleaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
