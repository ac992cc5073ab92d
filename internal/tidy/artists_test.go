package tidy

import "testing"

func TestCanonicalArtists(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"['Daft Punk', 'Pharrell Williams']", "Daft Punk, Pharrell Williams"},
		{"Daft Punk,Pharrell Williams", "Daft Punk, Pharrell Williams"},
		{"Daft Punk, Pharrell Williams", "Daft Punk, Pharrell Williams"},
		{`["Single Artist"]`, "Single Artist"},
		{"Solo", "Solo"},
		{"A,B,C", "A, B, C"},
		{"A,  B", "A, B"},
		{"", ""},
	}
	for _, c := range cases {
		got := CanonicalArtists(c.in)
		if got != c.want {
			t.Errorf("CanonicalArtists(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalArtistsIdempotent(t *testing.T) {
	inputs := []string{
		"['A', 'B']",
		"A,B",
		"A, B",
		"Solo",
		"",
	}
	for _, in := range inputs {
		once := CanonicalArtists(in)
		twice := CanonicalArtists(once)
		if once != twice {
			t.Errorf("CanonicalArtists not idempotent for %q: once %q, twice %q", in, once, twice)
		}
	}
}

func TestArtistCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A, B", 2},
		{"Solo", 1},
		{"A, B, C", 3},
		// The separator-vs-comma-in-name ambiguity: counted as two.
		{"Artist, Jr.", 2},
		// An empty string still counts as one artist.
		{"", 1},
	}
	for _, c := range cases {
		got := ArtistCount(c.in)
		if got != c.want {
			t.Errorf("ArtistCount(%q) = %d, want %d", c.in, got, c.want)
		}
		if got < 1 {
			t.Errorf("ArtistCount(%q) = %d, must be at least 1", c.in, got)
		}
	}
}
