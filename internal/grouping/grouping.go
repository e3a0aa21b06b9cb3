package grouping

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"shotname/internal/classify"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/sequence"
)

// Thresholds control batch boundaries.
type Thresholds struct {
	// LowJump starts a new batch when the current one already holds more
	// than SizeLimit files.
	LowJump time.Duration
	// BigJump always starts a new batch.
	BigJump   time.Duration
	SizeLimit int
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{LowJump: 20 * time.Minute, BigJump: 2 * time.Hour, SizeLimit: 100}
}

// Options configures Group.
type Options struct {
	Thresholds
	// DayFormat renders the day part of directory names, "YYMMDD_" when unset.
	DayFormat sequence.DateFormat
	// SeriesDir is the subdirectory for burst shots; empty keeps them with
	// the rest of the batch.
	SeriesDir string
	Logger    *slog.Logger
}

// Interval is one batch directory and the capture times it spans.
type Interval struct {
	Name  string    `json:"name"`
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
	Count int       `json:"count"`
}

// Contains reports whether t lies within the interval, bounds included.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.First) && !t.After(iv.Last)
}

// Distance is zero inside the interval, otherwise the gap to the closer
// endpoint.
func (iv Interval) Distance(t time.Time) time.Duration {
	if iv.Contains(t) {
		return 0
	}
	return min(absDuration(t.Sub(iv.First)), absDuration(t.Sub(iv.Last)))
}

// Assignment places one row into a directory relative to the target root.
type Assignment struct {
	Row    metadata.Row
	Dir    string
	Subdir string
}

// Target returns the destination directory below root.
func (a Assignment) Target(root string) string {
	return filepath.Join(root, a.Dir, a.Subdir)
}

// Result is the outcome of Group.
type Result struct {
	Assignments []Assignment
	Groups      []Interval
}

// Group assigns every row, in order, to exactly one batch. A new batch starts
// when the gap to the previous row exceeds BigJump, when it exceeds LowJump
// and the current batch holds more than SizeLimit files, or when the calendar
// day changes. Batches of one day are numbered from 01.
func Group(rows []metadata.Row, opts Options) Result {
	logger := logging.NewComponentLogger(opts.Logger, "grouping")
	dayFormat := opts.DayFormat
	if dayFormat.String() == "" {
		dayFormat = sequence.MustParseDateFormat("YYMMDD_")
	}

	var result Result
	if len(rows) == 0 {
		return result
	}

	var (
		current  Interval
		prev     time.Time
		day      = 1
		dirIndex = 1
		prefix   string
	)
	for i, row := range rows {
		ts, err := row.CaptureTime()
		if err != nil {
			logger.Warn("unreadable capture time", logging.String(logging.FieldFile, row.Path()), logging.Error(err))
		}
		if i == 0 {
			prefix = dayFormat.Format(ts, day)
			current = Interval{Name: dirName(prefix, dirIndex), First: ts}
		} else {
			gap := ts.Sub(prev)
			newDay := sequence.IsNewDay(ts, prev, true)
			if gap > opts.BigJump || (gap > opts.LowJump && current.Count > opts.SizeLimit) || newDay {
				current.Last = prev
				result.Groups = append(result.Groups, current)
				if newDay {
					day++
					dirIndex = 1
					prefix = dayFormat.Format(ts, day)
				} else {
					dirIndex++
				}
				current = Interval{Name: dirName(prefix, dirIndex), First: ts}
			}
		}

		subdir := ""
		if opts.SeriesDir != "" && classify.IsSeries(row) {
			subdir = opts.SeriesDir
		}
		result.Assignments = append(result.Assignments, Assignment{Row: row, Dir: current.Name, Subdir: subdir})
		current.Count++
		prev = ts
	}
	current.Last = prev
	result.Groups = append(result.Groups, current)
	return result
}

func dirName(prefix string, index int) string {
	return fmt.Sprintf("%s%02d", prefix, index)
}

// Nearest returns the interval closest to t. Ties keep the earlier interval.
func Nearest(intervals []Interval, t time.Time) (Interval, bool) {
	best := -1
	var bestDistance time.Duration
	for i, iv := range intervals {
		d := iv.Distance(t)
		if best < 0 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	if best < 0 {
		return Interval{}, false
	}
	return intervals[best], true
}

// AssignSecondary places each row into its nearest interval, below subdir.
// Rows are left unassigned only when there are no intervals at all.
func AssignSecondary(rows []metadata.Row, intervals []Interval, subdir string) []Assignment {
	if len(intervals) == 0 {
		return nil
	}
	out := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		ts, _ := row.CaptureTime()
		iv, _ := Nearest(intervals, ts)
		out = append(out, Assignment{Row: row, Dir: iv.Name, Subdir: subdir})
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
