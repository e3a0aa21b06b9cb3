package describe_test

import (
	"slices"
	"strings"
	"testing"

	"shotname/internal/describe"
)

func TestTreeFormat(t *testing.T) {
	tree := describe.NewTree()
	tree.Set([]string{"Location"}, "Italy, Rome")
	tree.Set([]string{"Processing", "HDR", "program"}, "HDRMerge")
	tree.Set([]string{"Processing", "HDR", "HDR-setting"}, "natural")
	tree.Set([]string{"Empty"}, "")

	got := tree.Format()
	want := "Location: Italy, Rome\n" +
		"Processing: \n-   HDR: \n-   -   program: HDRMerge\n-   -   HDR-setting: natural"
	if got != want {
		t.Fatalf("Format:\n%q\nwant\n%q", got, want)
	}
	if v, ok := tree.Get("Processing", "HDR", "program"); !ok || v != "HDRMerge" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if !describe.NewTree().Empty() {
		t.Fatal("new tree should be empty")
	}
}

func TestTreeKeepsInsertionOrder(t *testing.T) {
	tree := describe.NewTree()
	for _, key := range []string{"b", "a", "c"} {
		tree.Set([]string{key}, key+"1")
	}
	tree.Set([]string{"a"}, "a2")
	if got := tree.Format(); got != "b: b1\na: a2\nc: c1" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFileMetaDataUpdateSelectsByCounterRange(t *testing.T) {
	rows := []map[string]string{
		{"directory": "rome", "main_name": "1805-23_TZ101", "first": "1", "last": "10", "title": "Colosseum", "tags": "arena, history", "description": "Morning visit", "country": "Italy", "city": "Rome"},
		{"directory": "", "main_name": "1805-23_TZ101", "first": "11", "last": "", "title": "Forum", "tags": "ruins"},
	}

	inRange := describe.NewFileMetaData("/trip/rome", "1805-23_TZ101_0007S02_HDR.JPG")
	outOfRange := describe.NewFileMetaData("/trip/rome", "1805-23_TZ101_0012.JPG")
	for _, row := range rows {
		inRange.Update(row)
		outOfRange.Update(row)
	}
	if inRange.MainName != "1805-23_TZ101" || inRange.Counter != 7 {
		t.Fatalf("parsed %q %d", inRange.MainName, inRange.Counter)
	}
	if inRange.Title != "Colosseum" || !slices.Equal(inRange.Tags, []string{"arena", "history"}) {
		t.Fatalf("unexpected in-range data %+v", inRange)
	}
	if outOfRange.Title != "Forum" || !slices.Equal(outOfRange.Tags, []string{"ruins"}) {
		t.Fatalf("unexpected out-of-range data %+v", outOfRange)
	}

	tags := inRange.TagMap()
	if tags["Title"][0] != "Colosseum" || tags["Label"][0] != "1805-23_TZ101_0007S02_HDR.JPG" {
		t.Fatalf("unexpected tag map %+v", tags)
	}
	if !slices.Equal(tags["Keywords"], []string{"arena", "history", "Italy", "Rome"}) {
		t.Fatalf("keywords %v", tags["Keywords"])
	}
	if !strings.Contains(tags["ImageDescription"][0], "Morning visit") || !strings.Contains(tags["ImageDescription"][0], "Location: Italy, Rome") {
		t.Fatalf("description %q", tags["ImageDescription"][0])
	}
}

func TestUpdateProcessing(t *testing.T) {
	m := describe.NewFileMetaData("/trip", "1805-23_TZ101_0007B1_HDR.JPG")
	applied := m.UpdateProcessing(map[string]string{
		"directory":     "",
		"filename_part": "0007",
		"tags":          "HDR",
		"HDR-strength":  "high",
		"TM-preset":     "natural",
		"crop":          "16:9",
	}, describe.Programs{HDR: "HDRMerge", Panorama: "Hugin"})
	if !applied || !m.Matched() {
		t.Fatal("processing row should apply")
	}
	tree := m.Description()
	if v, _ := tree.Get("Processing", "HDR", "program"); v != "HDRMerge" {
		t.Fatalf("program = %q", v)
	}
	if v, _ := tree.Get("Processing", "HDR", "HDR-setting", "HDR-strength"); v != "high" {
		t.Fatalf("HDR setting = %q", v)
	}
	if v, _ := tree.Get("Processing", "HDR", "HDR-Tonemapping", "TM-preset"); v != "natural" {
		t.Fatalf("tonemapping = %q", v)
	}
	if v, _ := tree.Get("Processing", "misc", "crop"); v != "16:9" {
		t.Fatalf("misc = %q", v)
	}
	if _, ok := tree.Get("Processing", "Panorama", "program"); ok {
		t.Fatal("panorama program should not be set")
	}

	other := describe.NewFileMetaData("/trip", "1805-23_TZ101_0008.JPG")
	if other.UpdateProcessing(map[string]string{"filename_part": "0007"}, describe.Programs{}) {
		t.Fatal("non-matching file should not apply")
	}
}

func TestTitleDefaultsToKeywords(t *testing.T) {
	m := describe.NewFileMetaData("/trip", "1805-23_0001.JPG")
	m.AddTags("sunset", "beach", "sunset")
	tags := m.TagMap()
	if tags["Title"][0] != "Sunset, Beach" {
		t.Fatalf("title %q", tags["Title"][0])
	}
}

func TestLocationString(t *testing.T) {
	loc := describe.Location{}
	loc.Update(map[string]string{"country": "Italy", "region": "Lazio", "city": "", "location": "Forum"})
	if loc.String() != "Italy, Lazio, Forum" {
		t.Fatalf("String = %q", loc.String())
	}
}

func TestReadSheet(t *testing.T) {
	input := "directory;main_name;first;last;title;tags\n" +
		"rome;1805-23_TZ101;1;10;Colosseum;\"arena, history\"\n" +
		";;;;;\n"
	rows, err := describe.ReadSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0]["tags"] != "arena, history" || rows[0]["first"] != "1" {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}
