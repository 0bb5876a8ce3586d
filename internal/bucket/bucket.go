// Package bucket groups timestamped files into week-indexed buckets
// relative to a configured anchor date.
package bucket

import (
	"sort"
	"time"

	"github.com/backmassage/picsort/internal/scan"
)

// Entry pairs a scanned file with its resolved timestamp. Resolved is false
// when the timestamp resolver could not determine a date for the file.
type Entry struct {
	File     scan.File
	Time     time.Time
	Resolved bool
}

// Filter is the immutable per-invocation bucketing configuration. The
// anchor is an explicit parameter rather than process-wide state so tests
// can use arbitrary schedules.
type Filter struct {
	Anchor time.Time // first day of the periodic schedule; week 1 starts here

	After    time.Time // drop entries strictly before this instant
	HasAfter bool

	Weekday     time.Weekday // keep only entries falling on this weekday
	WeekdayOnly bool
}

// WeekIndex computes the 1-based week number of t relative to the anchor:
// floor(calendar days between the dates / 7) + 1, clamped to 1. Timestamps
// before the anchor deliberately collapse into week 1 rather than being
// rejected. The arithmetic is on calendar dates, not 168-hour spans.
func (f Filter) WeekIndex(t time.Time) int {
	days := int(dateOnly(t).Sub(dateOnly(f.Anchor)) / (24 * time.Hour))
	idx := days/7 + 1
	if idx < 1 {
		return 1
	}
	return idx
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Result is the outcome of one bucketing pass.
type Result struct {
	Anchor time.Time

	Weeks map[int][]scan.File // week index -> files in discovery order

	Kept           int
	NoTimestamp    []scan.File // excluded: timestamp unavailable (warn)
	SkippedBefore  int         // excluded: before the After bound
	SkippedWeekday int         // excluded: weekday mismatch
}

// ByWeek assigns entries to week buckets after applying the filter chain.
// Exclusion order per entry: unresolved timestamp first, then the After
// bound, then the weekday restriction. Survivors keep discovery order
// within their bucket.
func ByWeek(entries []Entry, f Filter) Result {
	res := Result{
		Anchor: f.Anchor,
		Weeks:  make(map[int][]scan.File),
	}
	for _, e := range entries {
		if !e.Resolved {
			res.NoTimestamp = append(res.NoTimestamp, e.File)
			continue
		}
		if f.HasAfter && e.Time.Before(f.After) {
			res.SkippedBefore++
			continue
		}
		if f.WeekdayOnly && e.Time.Weekday() != f.Weekday {
			res.SkippedWeekday++
			continue
		}
		idx := f.WeekIndex(e.Time)
		res.Weeks[idx] = append(res.Weeks[idx], e.File)
		res.Kept++
	}
	return res
}

// Empty reports the distinct "nothing to do" outcome: no entry survived the
// filters. Not an error; callers message the user accordingly.
func (r Result) Empty() bool { return r.Kept == 0 }

// Indices returns the populated week indices in ascending order.
func (r Result) Indices() []int {
	idx := make([]int, 0, len(r.Weeks))
	for i := range r.Weeks {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// WeekStart returns the calendar date a given week begins on:
// anchor + (index-1) weeks. Used for display and directory naming.
func (r Result) WeekStart(index int) time.Time {
	return dateOnly(r.Anchor).AddDate(0, 0, (index-1)*7)
}
