package store

import "fmt"

// TotalTracks returns the number of stored dataset rows.
func (s *Store) TotalTracks() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Track").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tracks: %w", err)
	}
	return count, nil
}

// CountByPartition reports how many stored rows landed in each partition.
func (s *Store) CountByPartition() (map[string]int, error) {
	return s.countBy("split")
}

// CountByDecade reports how many stored rows fall in each decade bucket.
func (s *Store) CountByDecade() (map[string]int, error) {
	return s.countBy("decade")
}

func (s *Store) countBy(column string) (map[string]int, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT %s, COUNT(*) FROM Track GROUP BY %s", column, column))
	if err != nil {
		return nil, fmt.Errorf("counting by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", column, err)
		}
		counts[key] = count
	}
	return counts, rows.Err()
}
