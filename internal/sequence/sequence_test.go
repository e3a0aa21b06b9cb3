package sequence_test

import (
	"testing"
	"time"

	"shotname/internal/classify"
	"shotname/internal/metadata"
	"shotname/internal/sequence"
)

func at(day, hour, minute, second int) time.Time {
	return time.Date(2018, 5, day, hour, minute, second, 0, time.UTC)
}

func TestDateFormat(t *testing.T) {
	ts := time.Date(2018, 5, 3, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		pattern string
		day     int
		want    string
	}{
		{"YYMM-DD", 1, "1805-03"},
		{"YYYYMMDD", 1, "20180503"},
		{"YYMMDD_", 1, "180503_"},
		{"YY-NN", 4, "18-04"},
		{"YYMMDD_HHmmss", 1, "180503_070809"},
		{"", 1, ""},
	}
	for _, tc := range tests {
		f, err := sequence.ParseDateFormat(tc.pattern)
		if err != nil {
			t.Fatalf("ParseDateFormat(%q): %v", tc.pattern, err)
		}
		if got := f.Format(ts, tc.day); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestDateFormatRejectsWideYear(t *testing.T) {
	if _, err := sequence.ParseDateFormat("YYYYY"); err == nil {
		t.Fatal("expected error")
	}
}

func TestUsesDay(t *testing.T) {
	if !sequence.MustParseDateFormat("YYMM-DD").UsesDay() || !sequence.MustParseDateFormat("NN").UsesDay() {
		t.Fatal("expected day component")
	}
	if sequence.MustParseDateFormat("YYMM").UsesDay() {
		t.Fatal("YYMM has no day component")
	}
}

func TestIsNewDay(t *testing.T) {
	if !sequence.IsNewDay(at(24, 0, 0, 0), at(23, 23, 59, 59), true) {
		t.Fatal("midnight crossing is a new day")
	}
	if sequence.IsNewDay(at(24, 0, 0, 0), at(23, 23, 59, 59), false) {
		t.Fatal("same month is not new without day component")
	}
	if !sequence.IsNewDay(time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC), at(31, 12, 0, 0), false) {
		t.Fatal("new month is new without day component")
	}
}

func TestTrackerSequenceSharesCounter(t *testing.T) {
	tracker := sequence.NewTracker(1, true, sequence.PerShot)
	ts := at(23, 10, 0, 0)
	for i, seq := range []int{1, 2, 3} {
		state := tracker.Advance(sequence.Step{Time: ts, Sequence: seq, Kind: classify.SequenceSeries})
		if state.Counter != 1 {
			t.Fatalf("frame %d counter = %d, want 1", i, state.Counter)
		}
		if state.SequenceRestart != (i == 0) {
			t.Fatalf("frame %d restart = %v", i, state.SequenceRestart)
		}
	}
	next := tracker.Advance(sequence.Step{Time: at(23, 10, 0, 5), Sequence: 0})
	if next.Counter != 2 {
		t.Fatalf("next shot counter = %d, want 2", next.Counter)
	}
}

func TestTrackerNumbersSequencesPerKind(t *testing.T) {
	tracker := sequence.NewTracker(1, true, sequence.PerShot)
	steps := []struct {
		step sequence.Step
		want int
	}{
		{sequence.Step{Time: at(23, 10, 0, 0), Sequence: 1, Kind: classify.SequenceSeries}, 1},
		{sequence.Step{Time: at(23, 10, 0, 0), Sequence: 2, Kind: classify.SequenceSeries}, 1},
		{sequence.Step{Time: at(23, 10, 1, 0), Sequence: 1, Kind: classify.SequenceBracket}, 1},
		{sequence.Step{Time: at(23, 10, 2, 0), Sequence: 0}, 0},
		{sequence.Step{Time: at(23, 10, 3, 0), Sequence: 1, Kind: classify.SequenceSeries}, 2},
		{sequence.Step{Time: at(23, 10, 3, 0), Sequence: 2, Kind: classify.SequenceSeries}, 2},
		{sequence.Step{Time: at(24, 9, 0, 0), Sequence: 1, Kind: classify.SequenceSeries}, 1},
	}
	for i, tc := range steps {
		if got := tracker.Advance(tc.step).SequenceNumber; got != tc.want {
			t.Fatalf("step %d sequence number = %d, want %d", i, got, tc.want)
		}
	}
}

func TestTrackerContinuationWithNewTimestampAdvances(t *testing.T) {
	tracker := sequence.NewTracker(1, true, sequence.PerShot)
	tracker.Advance(sequence.Step{Time: at(23, 10, 0, 0), Sequence: 1})
	state := tracker.Advance(sequence.Step{Time: at(23, 10, 0, 1), Sequence: 2})
	if state.Counter != 2 {
		t.Fatalf("counter = %d, want 2", state.Counter)
	}
}

func TestTrackerResetsOnNewDay(t *testing.T) {
	tracker := sequence.NewTracker(5, true, sequence.PerShot)
	first := tracker.Advance(sequence.Step{Time: at(23, 10, 0, 0)})
	second := tracker.Advance(sequence.Step{Time: at(23, 11, 0, 0)})
	third := tracker.Advance(sequence.Step{Time: at(24, 9, 0, 0)})
	if !first.NewDay || second.NewDay || !third.NewDay {
		t.Fatalf("new day flags: %v %v %v", first.NewDay, second.NewDay, third.NewDay)
	}
	if first.Counter != 5 || second.Counter != 6 || third.Counter != 5 {
		t.Fatalf("counters: %d %d %d", first.Counter, second.Counter, third.Counter)
	}
	if third.Day != 2 {
		t.Fatalf("day = %d, want 2", third.Day)
	}
}

func TestTrackerCounterIsMonotonicWithinDay(t *testing.T) {
	tracker := sequence.NewTracker(1, true, sequence.PerShot)
	steps := []sequence.Step{
		{Time: at(23, 10, 0, 0), Sequence: 1},
		{Time: at(23, 10, 0, 0), Sequence: 2},
		{Time: at(23, 10, 0, 1), Sequence: 0},
		{Time: at(23, 10, 0, 1), Sequence: 0},
		{Time: at(23, 10, 0, 2), Sequence: 3},
	}
	prev := 0
	for i, step := range steps {
		state := tracker.Advance(step)
		if state.Counter < prev {
			t.Fatalf("step %d counter %d decreased from %d", i, state.Counter, prev)
		}
		prev = state.Counter
	}
}

func TestTrackerPerRowAndBump(t *testing.T) {
	tracker := sequence.NewTracker(1, true, sequence.PerRow)
	ts := at(23, 10, 0, 0)
	a := tracker.Advance(sequence.Step{Time: ts, Sequence: 1})
	b := tracker.Advance(sequence.Step{Time: ts, Sequence: 2})
	if a.Counter != 1 || b.Counter != 2 {
		t.Fatalf("per-row counters %d %d", a.Counter, b.Counter)
	}
	if got := tracker.Bump(); got != 3 {
		t.Fatalf("Bump = %d", got)
	}
	c := tracker.Advance(sequence.Step{Time: ts})
	if c.Counter != 4 {
		t.Fatalf("counter after bump = %d", c.Counter)
	}
}

func TestCountDigits(t *testing.T) {
	var rows []metadata.Row
	for i := 0; i < 12; i++ {
		rows = append(rows, metadata.Row{DateTimeOriginal: at(23, 10, i, 0).Format(metadata.TimeLayout)})
	}
	rows = append(rows, metadata.Row{DateTimeOriginal: at(24, 10, 0, 0).Format(metadata.TimeLayout)})

	digits, days := sequence.CountDigits(rows, 1, true, sequence.PerShot)
	if digits != 2 {
		t.Fatalf("digits = %d, want 2", digits)
	}
	if len(days) != 2 || days[0].MaxCounter != 12 || days[1].MaxCounter != 1 {
		t.Fatalf("unexpected day counts %+v", days)
	}

	digits, _ = sequence.CountDigits(rows[:3], 1, true, sequence.PerShot)
	if digits != 1 {
		t.Fatalf("digits for three rows = %d, want 1", digits)
	}
}
