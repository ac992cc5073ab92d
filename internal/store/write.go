package store

import (
	"fmt"

	"github.com/akempf/spotify-data-tools/internal/split"
	"github.com/akempf/spotify-data-tools/internal/tidy"
)

// SaveDataset replaces the stored dataset with the given rows and their
// partition assignments, transactionally. Exporting twice leaves one copy,
// not two.
func (s *Store) SaveDataset(tracks []tidy.JoinedTrack, partitions []split.Partition) error {
	if len(tracks) != len(partitions) {
		return fmt.Errorf("saving dataset: %d tracks but %d partition labels", len(tracks), len(partitions))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Track"); err != nil {
		return fmt.Errorf("clearing previous dataset: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO Track (id, artists, name, popularity, duration_sec, release_date,
		                   year, decade, popularity_range, artist_count, split)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, track := range tracks {
		var releaseDate interface{}
		if track.ReleaseDate != nil {
			releaseDate = track.ReleaseDate.Format("2006-01-02")
		}
		_, err := stmt.Exec(track.TrackID, track.Artists, track.TrackName,
			track.Popularity, track.DurationSec, releaseDate,
			track.Year, track.Decade, track.PopularityRange,
			track.ArtistCount, partitions[i].String())
		if err != nil {
			return fmt.Errorf("inserting track %q: %w", track.TrackID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
