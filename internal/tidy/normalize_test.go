package tidy

import (
	"testing"

	"github.com/akempf/spotify-data-tools/internal/dataset"
)

func limitedTable(rows ...[]string) *dataset.Table {
	return &dataset.Table{
		Header: []string{"Popularity", "Artist Name(s)", "Track Name", "Duration (ms)", "Release Date", "Track ID"},
		Rows:   rows,
	}
}

func TestNormalizeLimited(t *testing.T) {
	table := limitedTable(
		[]string{"45", "A,B", "X", "200000", "2015-03-01", "t1"},
		[]string{"80", "Solo", "Y", "185500", "1999", "t2"},
	)

	tracks, stats, err := NormalizeLimited(table)
	if err != nil {
		t.Fatalf("NormalizeLimited failed: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if stats.Failures() != 0 {
		t.Errorf("expected no parse failures, got %+v", stats)
	}

	first := tracks[0]
	if first.Artists != "A, B" {
		t.Errorf("expected canonical artists \"A, B\", got %q", first.Artists)
	}
	if first.Popularity == nil || *first.Popularity != 45 {
		t.Errorf("expected popularity 45, got %v", first.Popularity)
	}
	if first.DurationSec == nil || *first.DurationSec != 200 {
		t.Errorf("expected duration 200s, got %v", first.DurationSec)
	}
	if first.ReleaseDate == nil || first.ReleaseDate.Year() != 2015 {
		t.Errorf("expected release year 2015, got %v", first.ReleaseDate)
	}

	// Duration is always milliseconds / 1000, no independent measurement.
	second := tracks[1]
	if second.DurationSec == nil || *second.DurationSec != 185.5 {
		t.Errorf("expected duration 185.5s, got %v", second.DurationSec)
	}
}

func TestNormalizeLimitedPermissiveParsing(t *testing.T) {
	table := limitedTable(
		[]string{"not-a-number", "A", "X", "", "never", "t1"},
	)

	tracks, stats, err := NormalizeLimited(table)
	if err != nil {
		t.Fatalf("NormalizeLimited failed: %v", err)
	}

	// Malformed cells become nil and are counted; the row survives.
	if len(tracks) != 1 {
		t.Fatalf("expected the row to survive, got %d rows", len(tracks))
	}
	track := tracks[0]
	if track.Popularity != nil {
		t.Errorf("expected nil popularity, got %v", *track.Popularity)
	}
	if track.DurationSec != nil {
		t.Errorf("expected nil duration, got %v", *track.DurationSec)
	}
	if track.ReleaseDate != nil {
		t.Errorf("expected nil release date, got %v", *track.ReleaseDate)
	}
	if stats.BadPopularity != 1 || stats.BadDuration != 1 || stats.BadDate != 1 {
		t.Errorf("expected one failure per cell, got %+v", stats)
	}
}

func TestNormalizeLimitedMissingColumn(t *testing.T) {
	table := &dataset.Table{
		Header: []string{"Popularity", "Track Name"},
		Rows:   [][]string{{"45", "X"}},
	}
	_, _, err := NormalizeLimited(table)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestNormalizeReference(t *testing.T) {
	table := &dataset.Table{
		Header: []string{"id", "artists", "release_date", "year", "duration_ms", "acousticness"},
		Rows: [][]string{
			{"t1", "['A', 'B']", "2015-03-01", "2015", "200000", "0.12"},
			{"t2", "['Solo']", "1988", "bad-year", "180000", "0.5"},
		},
	}

	tracks, stats, err := NormalizeReference(table)
	if err != nil {
		t.Fatalf("NormalizeReference failed: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}

	if tracks[0].Artists != "A, B" {
		t.Errorf("expected canonical artists \"A, B\", got %q", tracks[0].Artists)
	}
	if tracks[0].Year == nil || *tracks[0].Year != 2015 {
		t.Errorf("expected year 2015, got %v", tracks[0].Year)
	}

	if tracks[1].Year != nil {
		t.Errorf("expected nil year for malformed cell, got %v", *tracks[1].Year)
	}
	if stats.BadYear != 1 {
		t.Errorf("expected 1 bad year, got %d", stats.BadYear)
	}
}
