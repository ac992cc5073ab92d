package tidy

import (
	"regexp"
	"strings"
)

var (
	structuralChars = strings.NewReplacer("[", "", "]", "", "'", "", `"`, "")
	commaSpacing    = regexp.MustCompile(`,\s*`)
)

// CanonicalArtists rewrites an artist-list string into the one shape both
// datasets share: artists separated by comma plus a single space, with no
// brackets or quote characters. The reference dataset serializes artists as
// a list literal ("['A', 'B']") and the export files as a comma-joined
// string with inconsistent spacing ("A,B"); both collapse to "A, B".
// Applying CanonicalArtists twice yields the same string as applying it
// once.
//
// An artist name containing a literal comma ("Artist, Jr.") cannot be told
// apart from a separator. That ambiguity comes from the source format and
// is kept as-is; reported artist counts depend on it.
func CanonicalArtists(s string) string {
	s = structuralChars.Replace(s)
	s = commaSpacing.ReplaceAllString(s, ", ")
	return strings.TrimSpace(s)
}

// ArtistCount reports how many artists the canonical string names: the
// number of comma separators plus one. Always at least 1 — an empty string
// still counts as a single artist.
func ArtistCount(artists string) int {
	return strings.Count(artists, ",") + 1
}
