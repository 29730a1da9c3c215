package pulse

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

type goldenCountAt struct {
	ElapsedSeconds int `json:"elapsed_seconds"`
	Count          int `json:"count"`
}

type goldenDay struct {
	Day    string          `json:"day"`
	Seed   uint32          `json:"seed"`
	Gaps   []int           `json:"gaps"`
	Counts []goldenCountAt `json:"counts"`
}

// firstGaps replays the first n generated gaps for a day, which pins the
// whole arrival layout rather than just the aggregate counts.
func firstGaps(c Counter, dateKey string, n int) []int {
	next := mulberry32(Seed(dateKey))
	span := float64(c.maxGap - c.minGap + 1)
	out := make([]int, n)
	for i := range out {
		out[i] = c.minGap + int(next()*span)
	}
	return out
}

func TestReferenceDaysGolden(t *testing.T) {
	c := mustCounter(t, 1, 60)
	days := []string{"2025-12-31", "2026-01-15", "2026-01-31", "2026-02-01", "2026-03-09"}
	offsets := []int{0, 60, 600, 3600, 43200, 86399}

	snapshot := make([]goldenDay, 0, len(days))
	for _, day := range days {
		counts := make([]goldenCountAt, 0, len(offsets))
		for _, elapsed := range offsets {
			counts = append(counts, goldenCountAt{ElapsedSeconds: elapsed, Count: c.Count(day, elapsed)})
		}
		snapshot = append(snapshot, goldenDay{
			Day:    day,
			Seed:   Seed(day),
			Gaps:   firstGaps(c, day, 10),
			Counts: counts,
		})
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "reference_days", raw)
}
