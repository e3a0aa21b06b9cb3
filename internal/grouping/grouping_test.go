package grouping_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"shotname/internal/grouping"
	"shotname/internal/logging"
	"shotname/internal/metadata"
)

func row(name string, ts time.Time) metadata.Row {
	return metadata.Row{Directory: "/in", FileName: name, DateTimeOriginal: ts.Format(metadata.TimeLayout)}
}

func day(d, h, m int) time.Time {
	return time.Date(2018, 5, d, h, m, 0, 0, time.UTC)
}

func options() grouping.Options {
	return grouping.Options{
		Thresholds: grouping.DefaultThresholds(),
		SeriesDir:  "S",
		Logger:     logging.NewNop(),
	}
}

func TestGapBelowBigJumpStaysInGroup(t *testing.T) {
	result := grouping.Group([]metadata.Row{
		row("a.JPG", day(23, 10, 0)),
		row("b.JPG", day(23, 11, 30)),
		row("c.JPG", day(24, 9, 0)),
	}, options())

	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", result.Groups)
	}
	if result.Assignments[0].Dir != "180523_01" || result.Assignments[1].Dir != "180523_01" {
		t.Fatalf("90 minute gap split the group: %+v", result.Assignments)
	}
	if result.Assignments[2].Dir != "180524_01" {
		t.Fatalf("new day should start 180524_01, got %s", result.Assignments[2].Dir)
	}
}

func TestBigJumpStartsNewDirectory(t *testing.T) {
	result := grouping.Group([]metadata.Row{
		row("a.JPG", day(23, 8, 0)),
		row("b.JPG", day(23, 10, 1)),
	}, options())
	if result.Assignments[1].Dir != "180523_02" {
		t.Fatalf("expected second batch, got %s", result.Assignments[1].Dir)
	}
}

func TestLowJumpSplitsOnlyLargeBatches(t *testing.T) {
	opts := options()
	opts.SizeLimit = 2
	rows := []metadata.Row{
		row("a.JPG", day(23, 8, 0)),
		row("b.JPG", day(23, 8, 1)),
		row("c.JPG", day(23, 8, 2)),
		row("d.JPG", day(23, 8, 30)),
	}
	result := grouping.Group(rows, opts)
	if result.Assignments[3].Dir != "180523_02" {
		t.Fatalf("expected split after large batch, got %s", result.Assignments[3].Dir)
	}

	result = grouping.Group(rows[1:], opts)
	if result.Assignments[2].Dir != "180523_01" {
		t.Fatalf("small batch should not split, got %s", result.Assignments[2].Dir)
	}
}

func TestGroupCoversEveryRowOnceAndIntervalsContainMembers(t *testing.T) {
	var rows []metadata.Row
	ts := day(23, 6, 0)
	for i := 0; i < 40; i++ {
		ts = ts.Add(time.Duration(i%7) * 17 * time.Minute)
		r := row("f.JPG", ts)
		if i%5 == 0 {
			r.BurstMode = "On"
		}
		rows = append(rows, r)
	}
	result := grouping.Group(rows, options())
	if len(result.Assignments) != len(rows) {
		t.Fatalf("assigned %d of %d rows", len(result.Assignments), len(rows))
	}
	byName := make(map[string]grouping.Interval)
	total := 0
	for _, iv := range result.Groups {
		byName[iv.Name] = iv
		total += iv.Count
	}
	if total != len(rows) {
		t.Fatalf("group counts sum to %d", total)
	}
	for i, a := range result.Assignments {
		ts, _ := a.Row.CaptureTime()
		if !byName[a.Dir].Contains(ts) {
			t.Fatalf("row %d at %v outside %+v", i, ts, byName[a.Dir])
		}
		if (a.Subdir == "S") != (a.Row.BurstMode == "On") {
			t.Fatalf("row %d series subdir mismatch", i)
		}
	}
}

func TestNearest(t *testing.T) {
	intervals := []grouping.Interval{
		{Name: "a", First: day(23, 8, 0), Last: day(23, 9, 0)},
		{Name: "b", First: day(23, 12, 0), Last: day(23, 13, 0)},
	}
	cases := map[time.Time]string{
		day(23, 8, 30):  "a",
		day(23, 10, 0):  "a",
		day(23, 10, 30): "a",
		day(23, 11, 0):  "b",
		day(24, 0, 0):   "b",
	}
	for ts, want := range cases {
		got, ok := grouping.Nearest(intervals, ts)
		if !ok || got.Name != want {
			t.Fatalf("Nearest(%v) = %q, want %q", ts, got.Name, want)
		}
	}
	if _, ok := grouping.Nearest(nil, day(23, 0, 0)); ok {
		t.Fatal("no intervals should report false")
	}
}

func TestAssignSecondary(t *testing.T) {
	intervals := []grouping.Interval{{Name: "180523_01", First: day(23, 8, 0), Last: day(23, 9, 0)}}
	assignments := grouping.AssignSecondary([]metadata.Row{row("v.MP4", day(23, 9, 10))}, intervals, "mp4")
	if len(assignments) != 1 || assignments[0].Target("/root") != "/root/180523_01/mp4" {
		t.Fatalf("unexpected assignment %+v", assignments)
	}
	if grouping.AssignSecondary([]metadata.Row{row("v.MP4", day(23, 9, 10))}, nil, "mp4") != nil {
		t.Fatal("no intervals should assign nothing")
	}
}

func TestTimeFileRoundTrip(t *testing.T) {
	intervals := []grouping.Interval{
		{Name: "180523_01", First: day(23, 8, 0), Last: day(23, 9, 0)},
		{Name: "trip/day2", First: day(24, 8, 0), Last: day(24, 18, 45)},
	}
	var buf bytes.Buffer
	if err := grouping.WriteTimeFile(&buf, intervals); err != nil {
		t.Fatalf("WriteTimeFile: %v", err)
	}
	parsed, err := grouping.ParseTimeFile(strings.NewReader("# comment\n\n" + buf.String()))
	if err != nil {
		t.Fatalf("ParseTimeFile: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("parsed %d intervals", len(parsed))
	}
	for i := range intervals {
		if parsed[i].Name != intervals[i].Name || !parsed[i].First.Equal(intervals[i].First) || !parsed[i].Last.Equal(intervals[i].Last) {
			t.Fatalf("interval %d = %+v, want %+v", i, parsed[i], intervals[i])
		}
	}
}

func TestParseTimeFileAcceptsExifLayoutAndRejectsGarbage(t *testing.T) {
	parsed, err := grouping.ParseTimeFile(strings.NewReader("a, 2018:05:23 08:00:00, 2018:05:23 09:00:00\n"))
	if err != nil || len(parsed) != 1 {
		t.Fatalf("exif layout: %v %+v", err, parsed)
	}
	for _, bad := range []string{"a, 2018-05-23 08:00:00\n", "a, noon, 2018-05-23 09:00:00\n", "a, 2018-05-23 10:00:00, 2018-05-23 09:00:00\n"} {
		if _, err := grouping.ParseTimeFile(strings.NewReader(bad)); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
