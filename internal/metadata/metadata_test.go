package metadata_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/services"
)

func TestParseCaptureTime(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		subsec string
		want   time.Time
	}{
		{"plain", "2018:05:23 10:00:00", "", time.Date(2018, 5, 23, 10, 0, 0, 0, time.UTC)},
		{"subsec", "2018:05:23 10:00:00", "25", time.Date(2018, 5, 23, 10, 0, 0, 250_000_000, time.UTC)},
		{"inline fraction", "2018:05:23 10:00:00.050", "", time.Date(2018, 5, 23, 10, 0, 0, 50_000_000, time.UTC)},
		{"zone dropped", "2018:05:23 10:00:00+02:00", "", time.Date(2018, 5, 23, 10, 0, 0, 0, time.UTC)},
		{"report layout", "2018-05-23 10:00:00", "", time.Date(2018, 5, 23, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := metadata.ParseCaptureTime(tc.value, tc.subsec)
			if err != nil {
				t.Fatalf("ParseCaptureTime: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseCaptureTimeRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "yesterday", "2018:13:45 99:00:00"} {
		if _, err := metadata.ParseCaptureTime(value, ""); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestRowSequence(t *testing.T) {
	cases := map[string]int{"": 0, "3": 3, " 12 ": 12, "n/a": 0, "-1": 0}
	for in, want := range cases {
		if got := (metadata.Row{SequenceNumber: in}).Sequence(); got != want {
			t.Fatalf("Sequence(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestRowTagFallsBackToExtra(t *testing.T) {
	row := metadata.Row{Model: "DMC-TZ101", Extra: map[string]string{"FNumber": "5.6"}}
	if v, ok := row.Tag("Model"); !ok || v != "DMC-TZ101" {
		t.Fatalf("Model = %q, %v", v, ok)
	}
	if v, ok := row.Tag("FNumber"); !ok || v != "5.6" {
		t.Fatalf("FNumber = %q, %v", v, ok)
	}
	if _, ok := row.Tag("ISO"); ok {
		t.Fatal("ISO should be absent")
	}
}

func TestTableMissingAndRequire(t *testing.T) {
	table := metadata.NewTable(
		[]metadata.Row{{Directory: "/p", FileName: "a.JPG", DateTimeOriginal: "2018:05:23 10:00:00"}},
		metadata.PrimaryColumns...,
	)
	if !table.Has(metadata.PrimaryColumns...) {
		t.Fatal("expected primary columns present")
	}
	missing := table.Missing(metadata.ColHDR, metadata.ColFileName, metadata.ColBurstMode)
	if len(missing) != 2 || missing[0] != metadata.ColHDR || missing[1] != metadata.ColBurstMode {
		t.Fatalf("unexpected missing columns %v", missing)
	}
	err := table.Require("rename", metadata.ColHDR)
	if !errors.Is(err, services.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if err := table.Require("rename", metadata.PrimaryColumns...); err != nil {
		t.Fatalf("Require primary: %v", err)
	}
}

func TestEmptyTableHasNoColumns(t *testing.T) {
	table := metadata.NewTable(nil, metadata.PrimaryColumns...)
	if table.Has(metadata.ColFileName) {
		t.Fatal("empty table must not report columns")
	}
}

func TestSortRowsByCaptureTimeThenPath(t *testing.T) {
	rows := []metadata.Row{
		{Directory: "/p", FileName: "c.JPG", DateTimeOriginal: "2018:05:23 10:00:01"},
		{Directory: "/p", FileName: "b.JPG", DateTimeOriginal: "2018:05:23 10:00:00"},
		{Directory: "/p", FileName: "a.JPG", DateTimeOriginal: "2018:05:23 10:00:00"},
		{Directory: "/p", FileName: "z.JPG", DateTimeOriginal: "2018:05:23 10:00:00", SubSecTimeOriginal: "5"},
	}
	metadata.SortRows(rows)
	want := []string{"a.JPG", "b.JPG", "z.JPG", "c.JPG"}
	for i, name := range want {
		if rows[i].FileName != name {
			t.Fatalf("position %d = %s, want %s", i, rows[i].FileName, name)
		}
	}
}

func TestKindOf(t *testing.T) {
	if metadata.KindOf(".jpg") != metadata.KindImage || metadata.KindOf(".JPG") != metadata.KindImage {
		t.Fatal("jpg should be image")
	}
	if metadata.KindOf(".Mp4") != metadata.KindVideo {
		t.Fatal("mp4 should be video")
	}
	if metadata.KindOf(".png") != metadata.KindUnknown {
		t.Fatal("png should be unsupported")
	}
}

func TestListFilesFiltersExtensionAndHidden(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.JPG", "b.jpg", "c.MP4", ".hidden.JPG", "notes.txt", "sub/d.JPG"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ctx := context.Background()

	files, err := metadata.ListFiles(ctx, dir, false, ".JPG")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 jpg files, got %v", files)
	}

	files, err = metadata.ListFiles(ctx, dir, true, "")
	if err != nil {
		t.Fatalf("ListFiles recursive: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 media files, got %v", files)
	}
}

func TestExifReaderWithoutExifReportsMissingTimestamp(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.JPG"), []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	reader := metadata.NewExifReader(logging.NewNop())
	table, err := reader.Read(context.Background(), dir, false, ".JPG")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected one row, got %d", table.Len())
	}
	if !table.Has(metadata.ColDirectory, metadata.ColFileName) {
		t.Fatal("directory and file name always present")
	}
	if table.Has(metadata.ColDateTimeOriginal) {
		t.Fatal("timestamp should be missing for a file without exif")
	}
	if got := table.Row(0).FileName; got != "a.JPG" {
		t.Fatalf("file name %q", got)
	}
}

func TestParseColumn(t *testing.T) {
	cases := map[string]metadata.Column{
		"DateTimeOriginal":   metadata.ColDateTimeOriginal,
		"Date/Time Original": metadata.ColDateTimeOriginal,
		"burst mode":         metadata.ColBurstMode,
		"Camera Model Name":  metadata.ColModel,
		" ExposureTime ":     metadata.Column("ExposureTime"),
	}
	for input, want := range cases {
		if got := metadata.ParseColumn(input); got != want {
			t.Errorf("ParseColumn(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLookupTagGroup(t *testing.T) {
	group, ok := metadata.LookupTagGroup("sequence")
	if !ok || group.Name != "Sequence" {
		t.Fatalf("unexpected lookup result: %+v %v", group, ok)
	}
	if _, ok := metadata.LookupTagGroup("nope"); ok {
		t.Fatal("unknown group should not resolve")
	}
}
