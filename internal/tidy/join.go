package tidy

import (
	"sort"
	"strconv"
	"strings"
)

// JoinStats reports how many rows inner-join filtering and deduplication
// removed. Key mismatches are intentional filtering, not errors, but the
// counts are surfaced so a data-quality regression shows up immediately.
type JoinStats struct {
	Matched        int
	DroppedLimited int
	DroppedRef     int
	Duplicates     int
}

type joinKey struct {
	id      string
	artists string
}

// Join inner-joins the reference and limited records on (track id,
// canonical artist string). A record survives only if both sides carry the
// pair. The reference-side duration is dropped — the limited side's
// duration-in-seconds is authoritative. Exact-duplicate rows collapse to
// one, and the result is sorted by artist string ascending, track id as
// tie-break.
func Join(ref []ReferenceTrack, lim []LimitedTrack) ([]JoinedTrack, JoinStats) {
	var stats JoinStats

	byKey := make(map[joinKey][]ReferenceTrack, len(ref))
	for _, r := range ref {
		key := joinKey{r.TrackID, r.Artists}
		byKey[key] = append(byKey[key], r)
	}

	matched := make(map[joinKey]bool)
	seen := make(map[string]bool)
	var out []JoinedTrack
	for _, l := range lim {
		key := joinKey{l.TrackID, l.Artists}
		refs := byKey[key]
		if len(refs) == 0 {
			stats.DroppedLimited++
			continue
		}
		matched[key] = true
		for _, r := range refs {
			joined := JoinedTrack{
				TrackID:     l.TrackID,
				Artists:     l.Artists,
				TrackName:   l.TrackName,
				Popularity:  l.Popularity,
				DurationSec: l.DurationSec,
				ReleaseDate: l.ReleaseDate,
				Year:        r.Year,
			}
			k := dedupeKey(joined)
			if seen[k] {
				stats.Duplicates++
				continue
			}
			seen[k] = true
			out = append(out, joined)
		}
	}

	for key, refs := range byKey {
		if !matched[key] {
			stats.DroppedRef += len(refs)
		}
	}
	stats.Matched = len(out)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Artists != out[j].Artists {
			return out[i].Artists < out[j].Artists
		}
		return out[i].TrackID < out[j].TrackID
	})
	return out, stats
}

// dedupeKey renders every column of the row, so only rows equal in all
// columns collapse.
func dedupeKey(t JoinedTrack) string {
	var b strings.Builder
	for _, field := range []string{t.TrackID, t.Artists, t.TrackName} {
		b.WriteString(field)
		b.WriteByte(0x1f)
	}
	writeFloat(&b, t.Popularity)
	writeFloat(&b, t.DurationSec)
	if t.ReleaseDate != nil {
		b.WriteString(t.ReleaseDate.Format("2006-01-02"))
	}
	b.WriteByte(0x1f)
	if t.Year != nil {
		b.WriteString(strconv.Itoa(*t.Year))
	}
	return b.String()
}

func writeFloat(b *strings.Builder, v *float64) {
	if v != nil {
		b.WriteString(strconv.FormatFloat(*v, 'g', -1, 64))
	}
	b.WriteByte(0x1f)
}
