package sequence

import (
	"strconv"
	"time"

	"shotname/internal/classify"
	"shotname/internal/metadata"
)

// Policy selects when the counter advances.
type Policy int

const (
	// PerShot advances on every row except continuation frames of a
	// sequence (sequence number 2 or higher sharing the previous timestamp).
	PerShot Policy = iota
	// PerRow advances on every row. Used for videos and easy mode.
	PerRow
)

// Step is the input for one row.
type Step struct {
	Time     time.Time
	Sequence int
	Kind     classify.SequenceKind
}

// State is the tracker output for one row.
type State struct {
	Counter int
	NewDay  bool
	Day     int
	// SequenceIndex is the camera's frame number within its sequence.
	SequenceIndex   int
	SequenceRestart bool
	// SequenceNumber numbers the sequences of one kind within the day,
	// starting at 1. Zero for rows outside any sequence.
	SequenceNumber int
}

// Tracker holds counter state across rows of one run.
type Tracker struct {
	startIndex int
	useDay     bool
	policy     Policy

	started   bool
	counter   int
	day       int
	prev      time.Time
	sequences map[classify.SequenceKind]int
}

// NewTracker returns a tracker whose counter starts at startIndex on each
// new day.
func NewTracker(startIndex int, useDay bool, policy Policy) *Tracker {
	return &Tracker{
		startIndex: startIndex,
		useDay:     useDay,
		policy:     policy,
		counter:    startIndex - 1,
		sequences:  make(map[classify.SequenceKind]int),
	}
}

// Advance consumes one row.
func (t *Tracker) Advance(step Step) State {
	var state State
	if !t.started || IsNewDay(step.Time, t.prev, t.useDay) {
		state.NewDay = true
		t.day++
		t.counter = t.startIndex - 1
		clear(t.sequences)
	}

	switch t.policy {
	case PerRow:
		t.counter++
	default:
		if state.NewDay || step.Sequence < 2 || !step.Time.Equal(t.prev) {
			t.counter++
		}
	}

	if step.Kind != classify.SequenceNone {
		seen := t.sequences[step.Kind] > 0
		state.SequenceRestart = !seen || (step.Sequence < 2 && !step.Time.Equal(t.prev))
		if state.SequenceRestart {
			t.sequences[step.Kind]++
		}
		state.SequenceNumber = t.sequences[step.Kind]
	}

	state.Counter = t.counter
	state.Day = t.day
	state.SequenceIndex = step.Sequence
	t.prev = step.Time
	t.started = true
	return state
}

// Bump advances the counter once more, for regenerating a colliding name.
func (t *Tracker) Bump() int {
	t.counter++
	return t.counter
}

// Counter returns the current counter value.
func (t *Tracker) Counter() int {
	return t.counter
}

// DayCount is the highest counter reached on one day.
type DayCount struct {
	Date       time.Time
	MaxCounter int
}

// CountDigits dry-runs a tracker over rows and returns the decimal width of
// the largest counter any day reaches, plus the per-day maxima. Rows must be
// in capture order.
func CountDigits(rows []metadata.Row, startIndex int, useDay bool, policy Policy) (int, []DayCount) {
	tracker := NewTracker(startIndex, useDay, policy)
	var days []DayCount
	maxCounter := startIndex
	for _, row := range rows {
		ts, _ := row.CaptureTime()
		state := tracker.Advance(Step{Time: ts, Sequence: row.Sequence()})
		if state.NewDay {
			days = append(days, DayCount{Date: ts})
		}
		days[len(days)-1].MaxCounter = state.Counter
		maxCounter = max(maxCounter, state.Counter)
	}
	return len(strconv.Itoa(maxCounter)), days
}
