// Package pulse computes the synthetic "check-ins today" counter rendered on
// the landing page. The count is cosmetic: it is not backed by real user data,
// but every viewer asking about the same calendar day and the same second of
// that day receives the same number, and the number resets to zero at local
// midnight.
//
// Determinism is the whole contract. The date key is hashed with 32-bit FNV-1a
// into a seed, the seed drives a Mulberry32 generator, and the generator walks
// uniform integer gaps until the elapsed time of day is exceeded. All of it is
// pure computation: no clock reads, no I/O, no shared state. The exact hash and
// generator are a fixed protocol pinned by golden tests; changing either
// changes every displayed count.
package pulse

import (
	"fmt"
	"hash/fnv"
	"time"
)

// namespace prefixes the date key before hashing so other seeded features can
// never collide with the counter's daily sequence.
const namespace = "beyond-january-daily-counter-"

// DayKeyFormat is the canonical YYYY-MM-DD layout for date keys.
const DayKeyFormat = "2006-01-02"

// Counter produces a reproducible count of synthetic events since local
// midnight. The zero value always reports zero; construct with New.
type Counter struct {
	minGap int
	maxGap int
}

// New validates the inclusive bounds, in seconds, between consecutive
// synthetic events. minGap must be at least 1 (which also caps the count at
// one event per elapsed second) and maxGap must not be below minGap. Bound
// errors are configuration mistakes, so callers should fail fast at startup.
func New(minGap, maxGap int) (Counter, error) {
	if minGap < 1 {
		return Counter{}, fmt.Errorf("pulse: min gap must be at least 1 second, got %d", minGap)
	}
	if maxGap < minGap {
		return Counter{}, fmt.Errorf("pulse: max gap %d below min gap %d", maxGap, minGap)
	}
	return Counter{minGap: minGap, maxGap: maxGap}, nil
}

// MinGap returns the configured lower gap bound in seconds.
func (c Counter) MinGap() int { return c.minGap }

// MaxGap returns the configured upper gap bound in seconds.
func (c Counter) MaxGap() int { return c.maxGap }

// Count returns how many synthetic events occurred on dateKey's day within
// the first elapsedSeconds seconds after midnight. The result is pure: for a
// fixed date key and elapsed value it is identical across processes and
// machines, non-decreasing in elapsedSeconds, and zero at elapsedSeconds 0.
// Negative elapsed values are clamped to zero so the function stays total.
func (c Counter) Count(dateKey string, elapsedSeconds int) int {
	if c.minGap < 1 || c.maxGap < c.minGap {
		return 0
	}
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	next := mulberry32(Seed(dateKey))
	span := float64(c.maxGap - c.minGap + 1)
	t, n := 0, 0
	for {
		t += c.minGap + int(next()*span)
		if t > elapsedSeconds {
			return n
		}
		n++
	}
}

// At evaluates the counter for the wall-clock moment now, deriving the date
// key and elapsed seconds in now's location.
func (c Counter) At(now time.Time) int {
	return c.Count(DayKey(now), ElapsedSeconds(now))
}

// DayKey formats t's calendar date in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ElapsedSeconds returns whole seconds between t and midnight of t's day in
// t's location. Subtracting the real midnight instant keeps DST days honest:
// a 23- or 25-hour day still reports the seconds that actually elapsed.
func ElapsedSeconds(t time.Time) int {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return int(t.Sub(midnight) / time.Second)
}

// Seed hashes the namespaced date key with 32-bit FNV-1a.
func Seed(dateKey string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(namespace + dateKey))
	return h.Sum32()
}

// mulberry32 returns a generator of floats in [0,1) using the Mulberry32
// construction: a 32-bit state advanced by a fixed odd increment, mixed with
// xorshifts and odd multiplications, divided down to the unit interval.
func mulberry32(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		z := state
		z = (z ^ z>>15) * (z | 1)
		z ^= z + (z^z>>7)*(z|61)
		return float64(z^z>>14) / (1 << 32)
	}
}
