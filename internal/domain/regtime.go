package domain

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"time"
)

// RegDateLayout is the canonical "YY/DD/MM HH:MM" form a regdate is padded to
// before parsing. Two-digit years 69-99 map to 19xx, 00-68 to 20xx.
const RegDateLayout = "06/02/01 15:04"

// regDateFields matches year/day/month hour:minute where every field has one or
// two digits. Day and hour may be space-padded.
var regDateFields = regexp.MustCompile(`^\s*(\d{1,2})/\s?(\d{1,2})/(\d{1,2})\s+(\d{1,2}):(\d{1,2})\s*$`)

// ParseRegistrationTime parses a roster regdate value such as "08/11/2 9:07",
// "2/2/09 11:29" or "08/ 2/1  9:07".
func ParseRegistrationTime(raw string) (time.Time, error) {
	m := regDateFields.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("parse regdate %q: want YY/D/M H:MM", raw)
	}

	padded := pad2(m[1]) + "/" + pad2(m[2]) + "/" + pad2(m[3]) + " " + pad2(m[4]) + ":" + pad2(m[5])
	t, err := time.Parse(RegDateLayout, padded)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse regdate %q: %w", raw, err)
	}
	return t, nil
}

func pad2(field string) string {
	if len(field) == 1 {
		return "0" + field
	}
	return field
}

// Bucket is one histogram entry.
type Bucket[K cmp.Ordered] struct {
	Key   K
	Count int
}

// Tally counts occurrences per bucket key.
type Tally[K cmp.Ordered] struct {
	counts map[K]int
}

// NewTally creates an empty Tally.
func NewTally[K cmp.Ordered]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

// Add records one occurrence of key.
func (t *Tally[K]) Add(key K) {
	t.counts[key]++
}

// Len returns the number of distinct keys seen.
func (t *Tally[K]) Len() int {
	return len(t.counts)
}

// Count returns the occurrences recorded for key.
func (t *Tally[K]) Count(key K) int {
	return t.counts[key]
}

// Top returns at most n buckets ordered by descending count, equal counts by
// ascending key. Fewer than n distinct keys returns all of them.
func (t *Tally[K]) Top(n int) []Bucket[K] {
	buckets := make([]Bucket[K], 0, len(t.counts))
	for k, c := range t.counts {
		buckets = append(buckets, Bucket[K]{Key: k, Count: c})
	}
	slices.SortFunc(buckets, func(a, b Bucket[K]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if n < 0 {
		n = 0
	}
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// RegistrationPeaks accumulates hour-of-day and weekday histograms over
// registration times.
type RegistrationPeaks struct {
	Hours    *Tally[int]
	Weekdays *Tally[time.Weekday]
}

// NewRegistrationPeaks creates empty hour and weekday histograms.
func NewRegistrationPeaks() *RegistrationPeaks {
	return &RegistrationPeaks{
		Hours:    NewTally[int](),
		Weekdays: NewTally[time.Weekday](),
	}
}

// Add records one registration time in both histograms.
func (p *RegistrationPeaks) Add(t time.Time) {
	p.Hours.Add(t.Hour())
	p.Weekdays.Add(t.Weekday())
}
