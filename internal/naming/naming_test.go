package naming_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"shotname/internal/classify"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/naming"
	"shotname/internal/sequence"
)

func stamp(h, m, s int) string {
	return time.Date(2018, 5, 23, h, m, s, 0, time.UTC).Format(metadata.TimeLayout)
}

func imageRow(name, ts string) metadata.Row {
	return metadata.Row{
		Directory:         "/photos",
		FileName:          name,
		DateTimeOriginal:  ts,
		Model:             "DMC-TZ101",
		ImageQuality:      "Fine",
		HDR:               "Off",
		SceneMode:         "Off",
		AdvancedSceneMode: "Off",
		BracketSettings:   "No Bracket",
		BurstMode:         "Off",
		SequenceNumber:    "0",
	}
}

func imageOptions() naming.Options {
	return naming.Options{
		DateFormat:      sequence.MustParseDateFormat("YYMM-DD"),
		StartIndex:      1,
		PreservePostfix: true,
		Kind:            metadata.KindImage,
		Digits:          3,
		Logger:          logging.NewNop(),
	}
}

func build(opts naming.Options, rows ...metadata.Row) []naming.Record {
	b := naming.NewBuilder(opts)
	for _, row := range rows {
		b.Build(row)
	}
	return b.Records()
}

func TestCountersForPlainShots(t *testing.T) {
	ts := stamp(10, 0, 0)
	records := build(imageOptions(), imageRow("P1.JPG", ts), imageRow("P2.JPG", ts), imageRow("P3.JPG", ts))
	want := []string{"1805-23_TZ101_001.JPG", "1805-23_TZ101_002.JPG", "1805-23_TZ101_003.JPG"}
	for i, record := range records {
		if record.NewName != want[i] {
			t.Fatalf("record %d = %q, want %q", i, record.NewName, want[i])
		}
	}
}

func TestHDRPostfix(t *testing.T) {
	first := imageRow("P1.JPG", stamp(10, 0, 0))
	first.HDR = "On"
	second := imageRow("P2.JPG", stamp(10, 0, 5))
	records := build(imageOptions(), first, second)
	if !strings.HasSuffix(records[0].NewBase, "_HDR") {
		t.Fatalf("first name %q lacks _HDR", records[0].NewBase)
	}
	if records[1].NewBase != "1805-23_TZ101_002" {
		t.Fatalf("second name %q", records[1].NewBase)
	}
}

func TestBurstSequenceTag(t *testing.T) {
	ts := stamp(10, 0, 0)
	var rows []metadata.Row
	for _, seq := range []string{"1", "2", "3"} {
		row := imageRow("P"+seq+".JPG", ts)
		row.BurstMode = "On"
		row.SequenceNumber = seq
		rows = append(rows, row)
	}
	records := build(imageOptions(), rows...)
	want := []string{"1805-23_TZ101_001S01", "1805-23_TZ101_001S02", "1805-23_TZ101_001S03"}
	for i, record := range records {
		if record.NewBase != want[i] {
			t.Fatalf("record %d = %q, want %q", i, record.NewBase, want[i])
		}
		if record.Sequence != classify.SequenceSeries || record.SequenceNumber != 1 {
			t.Fatalf("record %d sequence = %q %d", i, record.Sequence, record.SequenceNumber)
		}
	}
}

func TestSequenceTagSkippedForHDRFiles(t *testing.T) {
	ts := stamp(10, 0, 0)
	first := imageRow("P1_HDR.JPG", ts)
	first.BracketSettings = "3 Images, 1/3 EV"
	first.SequenceNumber = "1"
	second := first
	second.FileName = "P2_HDR.JPG"
	second.SequenceNumber = "2"

	records := build(imageOptions(), first, second)
	if records[0].NewBase != "1805-23_TZ101_001" {
		t.Fatalf("first = %q", records[0].NewBase)
	}
	if records[1].NewBase != "1805-23_TZ101_001_K" {
		t.Fatalf("repeat of previous name should get _K, got %q", records[1].NewBase)
	}
}

func TestIdenticalMetadataYieldsUniqueNames(t *testing.T) {
	ts := stamp(10, 0, 0)
	var rows []metadata.Row
	for _, name := range []string{"A_HDR.JPG", "B_HDR.JPG", "C_HDR.JPG", "D_HDR.JPG"} {
		row := imageRow(name, ts)
		row.BurstMode = "On"
		row.SequenceNumber = "2"
		rows = append(rows, row)
	}
	records := build(imageOptions(), rows...)
	seen := make(map[string]bool)
	for _, record := range records {
		if seen[record.NewBase] {
			t.Fatalf("duplicate name %q in %+v", record.NewBase, records)
		}
		seen[record.NewBase] = true
	}
}

func TestBuildAllWidensCounterAfterCollisions(t *testing.T) {
	var rows []metadata.Row
	for i := 0; i < 9; i++ {
		rows = append(rows, imageRow("P"+strconv.Itoa(i)+".JPG", stamp(10, i, 0)))
	}
	for _, name := range []string{"Q1.JPG", "Q2.JPG"} {
		row := imageRow(name, stamp(10, 8, 0))
		row.SequenceNumber = "2"
		rows = append(rows, row)
	}
	opts := imageOptions()
	opts.Digits = 1

	records, digits := naming.BuildAll(metadata.NewTable(rows, metadata.PrimaryColumns...), opts)
	if digits != 2 {
		t.Fatalf("digits = %d, want 2", digits)
	}
	want := []string{"1805-23_TZ101_09", "1805-23_TZ101_09_K", "1805-23_TZ101_10"}
	for i, name := range want {
		if got := records[8+i].NewBase; got != name {
			t.Fatalf("record %d = %q, want %q", 8+i, got, name)
		}
	}
	if records[0].NewBase != "1805-23_TZ101_01" {
		t.Fatalf("first record = %q", records[0].NewBase)
	}
}

func TestPostfixPreservationIsIdempotent(t *testing.T) {
	first := imageRow("P1.JPG", stamp(10, 0, 0))
	first.HDR = "On"
	second := imageRow("P2.JPG", stamp(10, 0, 7))

	opts := imageOptions()
	records := build(opts, first, second)

	first.FileName = records[0].NewName
	second.FileName = records[1].NewName
	again := build(opts, first, second)
	for i := range records {
		if again[i].NewName != records[i].NewName {
			t.Fatalf("rerun changed %q to %q", records[i].NewName, again[i].NewName)
		}
	}

	first.FileName = records[0].NewBase + "_crop_2.JPG"
	second.FileName = records[1].NewBase + "_crop_2.JPG"
	cropped := build(opts, first, second)
	for i := range records {
		if cropped[i].NewName != records[i].NewBase+"_crop_2.JPG" {
			t.Fatalf("rerun changed %q to %q", records[i].NewBase+"_crop_2.JPG", cropped[i].NewName)
		}
	}
}

func TestUserPostfixIsKept(t *testing.T) {
	row := imageRow("1805-23_TZ101_001_HDR_edit.JPG", stamp(10, 0, 0))
	row.HDR = "On"
	records := build(imageOptions(), row)
	if records[0].NewBase != "1805-23_TZ101_001_HDR_edit" {
		t.Fatalf("got %q", records[0].NewBase)
	}

	plain := imageRow("1805-23_TZ101_004_pano.JPG", stamp(10, 0, 0))
	plain.HDR = "On"
	records = build(imageOptions(), plain)
	if records[0].NewBase != "1805-23_TZ101_001_HDR_pano" {
		t.Fatalf("got %q", records[0].NewBase)
	}
}

func TestExtractPostfix(t *testing.T) {
	cases := map[string]string{
		"P1000123.JPG":                  "",
		"IMG_1234.JPG":                  "",
		"DSC_0001_edit.JPG":             "_edit",
		"1805-23_TZ101_0012S03_HDR.JPG": "_HDR",
		"1805-23_TZ101_001_K_HDR.JPG":   "_K_HDR",
		"1805-23_M01_4K.MP4":            "_4K",
		"Trip_2018_0001.JPG":            "",
		"1805-23_00124KBSF_HDR.JPG":     "_HDR",
	}
	for in, want := range cases {
		if got := naming.ExtractPostfix(in); got != want {
			t.Fatalf("ExtractPostfix(%q) = %q, want %q", in, got, want)
		}
	}

	anchored := []struct {
		name, prefix, want string
	}{
		{"1805-23_TZ101_001_crop_2.JPG", "1805-23_TZ101", "_crop_2"},
		{"1805-23_TZ101_0012S03_HDR_v2.JPG", "1805-23_TZ101", "_HDR_v2"},
		{"1805-23_TZ101_001.JPG", "1805-23_TZ101", ""},
		{"1805-23_1_2.jpg", "1805-23", "_2"},
		{"T_180523_Rome_M01_4K_3.MP4", "T_180523_Rome", "_4K_3"},
		{"DSC_0001_edit.JPG", "1805-23_TZ101", "_edit"},
	}
	for _, tc := range anchored {
		if got := naming.ExtractPostfixAfter(tc.name, tc.prefix); got != tc.want {
			t.Fatalf("ExtractPostfixAfter(%q, %q) = %q, want %q", tc.name, tc.prefix, got, tc.want)
		}
	}
}

func TestVideoNaming(t *testing.T) {
	row := metadata.Row{
		Directory:         "/videos",
		FileName:          "P1.MP4",
		DateTimeOriginal:  stamp(11, 0, 0),
		ImageQuality:      "4k Movie",
		VideoFrameRate:    "25",
		HDR:               "Off",
		SceneMode:         "Off",
		AdvancedSceneMode: "Off",
	}
	second := row
	second.FileName = "P2.MP4"
	opts := naming.Options{
		Prefix:     "T_",
		DateFormat: sequence.MustParseDateFormat("YYMMDD"),
		StartIndex: 1,
		Kind:       metadata.KindVideo,
		Name:       "Rome",
		Logger:     logging.NewNop(),
	}
	records := build(opts, row, second)
	if records[0].NewName != "T_180523_Rome_M01_4K.MP4" || records[1].NewName != "T_180523_Rome_M02_4K.MP4" {
		t.Fatalf("unexpected names %q %q", records[0].NewName, records[1].NewName)
	}
}

func TestEasyModeCountsEveryRow(t *testing.T) {
	ts := stamp(10, 0, 0)
	a := metadata.Row{Directory: "/p", FileName: "a.jpg", DateTimeOriginal: ts, SequenceNumber: "2"}
	b := metadata.Row{Directory: "/p", FileName: "b.jpg", DateTimeOriginal: ts, SequenceNumber: "3"}
	opts := imageOptions()
	opts.EasyMode = true
	opts.Digits = 1
	records := build(opts, a, b)
	if records[0].NewName != "1805-23_1.jpg" || records[1].NewName != "1805-23_2.jpg" {
		t.Fatalf("unexpected names %q %q", records[0].NewName, records[1].NewName)
	}
}

func TestRawCompanion(t *testing.T) {
	opts := imageOptions()
	opts.RawExtension = ".Raw"
	opts.Exists = func(dir, name string) bool { return dir == "/photos" && name == "P1.Raw" }
	records := build(opts, imageRow("P1.JPG", stamp(10, 0, 0)), imageRow("P2.JPG", stamp(10, 0, 1)))
	if !records[0].HasRaw() || records[0].RawNew != "1805-23_TZ101_001.Raw" {
		t.Fatalf("raw companion not attached: %+v", records[0])
	}
	if records[1].HasRaw() {
		t.Fatalf("unexpected raw companion: %+v", records[1])
	}
}

func TestRecordString(t *testing.T) {
	record := naming.Record{OldName: "P1.JPG", NewName: "1805-23_001.JPG"}
	line := record.String()
	if !strings.HasPrefix(line, "P1.JPG ") || !strings.Contains(line, "\t 1805-23_001.JPG") {
		t.Fatalf("unexpected audit line %q", line)
	}
}
