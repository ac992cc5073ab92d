package dataset

// Table is one CSV file held in memory. Every cell stays text on read so
// that heterogeneous value formatting across export files cannot change
// column typing before normalization runs.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the named column, or -1 if the header does
// not contain it.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
