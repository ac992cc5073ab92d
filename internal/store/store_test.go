package store

import (
	"path/filepath"
	"testing"

	"github.com/akempf/spotify-data-tools/internal/split"
	"github.com/akempf/spotify-data-tools/internal/tidy"
)

func createTestDb(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tracks.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New(%s) error: %v", dbPath, err)
	}

	return store
}

func testTracks() ([]tidy.JoinedTrack, []split.Partition) {
	pop := 45.0
	duration := 200.0
	year := 2015
	tracks := []tidy.JoinedTrack{
		{
			TrackID:         "t1",
			Artists:         "A, B",
			TrackName:       "X",
			Popularity:      &pop,
			DurationSec:     &duration,
			Year:            &year,
			Decade:          "2010 - 2020",
			PopularityRange: "41-50",
			ArtistCount:     2,
		},
		{
			// Missing numerics are stored as NULL.
			TrackID:     "t2",
			Artists:     "Solo",
			TrackName:   "Y",
			Decade:      "",
			ArtistCount: 1,
		},
	}
	return tracks, []split.Partition{split.Train, split.Test}
}

func TestSaveDataset(t *testing.T) {
	s := createTestDb(t)
	defer s.Close()

	tracks, partitions := testTracks()
	if err := s.SaveDataset(tracks, partitions); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	total, err := s.TotalTracks()
	if err != nil {
		t.Fatalf("TotalTracks failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 tracks, got %d", total)
	}

	counts, err := s.CountByPartition()
	if err != nil {
		t.Fatalf("CountByPartition failed: %v", err)
	}
	if counts["train"] != 1 || counts["test"] != 1 {
		t.Errorf("unexpected partition counts: %v", counts)
	}

	decades, err := s.CountByDecade()
	if err != nil {
		t.Fatalf("CountByDecade failed: %v", err)
	}
	if decades["2010 - 2020"] != 1 {
		t.Errorf("unexpected decade counts: %v", decades)
	}

	// NULLs round-trip for the row with missing numerics.
	var popularity *float64
	err = s.db.QueryRow("SELECT popularity FROM Track WHERE id = 't2'").Scan(&popularity)
	if err != nil {
		t.Fatalf("querying t2: %v", err)
	}
	if popularity != nil {
		t.Errorf("expected NULL popularity, got %v", *popularity)
	}
}

func TestSaveDatasetReplaces(t *testing.T) {
	s := createTestDb(t)
	defer s.Close()

	tracks, partitions := testTracks()
	if err := s.SaveDataset(tracks, partitions); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}
	// Exporting again must replace, not append.
	if err := s.SaveDataset(tracks, partitions); err != nil {
		t.Fatalf("SaveDataset (repeat) failed: %v", err)
	}

	total, err := s.TotalTracks()
	if err != nil {
		t.Fatalf("TotalTracks failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 tracks after repeat export, got %d", total)
	}
}

func TestSaveDatasetLengthMismatch(t *testing.T) {
	s := createTestDb(t)
	defer s.Close()

	tracks, _ := testTracks()
	err := s.SaveDataset(tracks, []split.Partition{split.Train})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
