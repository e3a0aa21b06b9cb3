package classify_test

import (
	"errors"
	"slices"
	"testing"

	"shotname/internal/classify"
	"shotname/internal/metadata"
	"shotname/internal/services"
)

func TestSequenceTagPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		row   metadata.Row
		index int
		want  string
	}{
		{"bracket beats burst", metadata.Row{BracketSettings: "3 Images, 1/3 EV", BurstMode: "On"}, 2, "B2"},
		{"no bracket", metadata.Row{BracketSettings: "No Bracket", BurstMode: "On"}, 3, "S03"},
		{"stop motion", metadata.Row{TimerRecording: "Stop-motion Animation"}, 7, "SM007"},
		{"timelapse", metadata.Row{TimerRecording: "Time Lapse"}, 12, "TL012"},
		{"4k photo", metadata.Row{ImageQuality: "8.2"}, 1, "4KBSF"},
		{"plain", metadata.Row{BurstMode: "Off", ImageQuality: "Fine"}, 1, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify.SequenceTag(tc.index, tc.row); got != tc.want {
				t.Fatalf("SequenceTag = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecordModeTag(t *testing.T) {
	tests := []struct {
		row  metadata.Row
		want string
	}{
		{metadata.Row{ImageQuality: "4k Movie", VideoFrameRate: "29.97"}, "_4KB"},
		{metadata.Row{ImageQuality: "4k Movie", VideoFrameRate: "25"}, "_4K"},
		{metadata.Row{ImageQuality: "Full HD Movie", AdvancedSceneMode: "HS"}, "_HS"},
		{metadata.Row{ImageQuality: "Full HD Movie", AdvancedSceneMode: "Off"}, "_FHD"},
		{metadata.Row{ImageQuality: "Full HD Movie", AdvancedSceneMode: "Normal"}, ""},
	}
	for _, tc := range tests {
		if got := classify.RecordModeTag(tc.row); got != tc.want {
			t.Fatalf("RecordModeTag(%+v) = %q, want %q", tc.row, got, tc.want)
		}
	}
}

func TestModePostfix(t *testing.T) {
	scene := metadata.Row{SceneMode: "Scenery", AdvancedSceneMode: "Bright Blue Sky", HDR: "On"}
	if got := classify.ModePostfix(scene); got != "_BBS" {
		t.Fatalf("scene postfix = %q", got)
	}
	unknownScene := metadata.Row{SceneMode: "Scenery", AdvancedSceneMode: "Mystery", HDR: "On"}
	if got := classify.ModePostfix(unknownScene); got != "_HDR" {
		t.Fatalf("unknown scene falls through to HDR, got %q", got)
	}
	creative := metadata.Row{SceneMode: "Creative Control", AdvancedSceneMode: "Miniature"}
	if got := classify.ModePostfix(creative); got != "_MINI" {
		t.Fatalf("creative postfix = %q", got)
	}
	hdr := metadata.Row{SceneMode: "Off", AdvancedSceneMode: "Off", HDR: "On"}
	if got := classify.ModePostfix(hdr); got != "_HDR" {
		t.Fatalf("hdr postfix = %q", got)
	}
	if got := classify.ModePostfix(metadata.Row{HDR: "Off", SceneMode: "Off"}); got != "" {
		t.Fatalf("plain postfix = %q", got)
	}
}

func TestModePostfixCheckedReportsUnknownCreative(t *testing.T) {
	row := metadata.Row{FileName: "P1.JPG", SceneMode: "Digital Filter", AdvancedSceneMode: "Neon Dream", HDR: "On"}
	got, err := classify.ModePostfixChecked(row)
	if got != "" {
		t.Fatalf("expected empty postfix, got %q", got)
	}
	if !errors.Is(err, services.ErrUnrecognizedValue) {
		t.Fatalf("expected ErrUnrecognizedValue, got %v", err)
	}
}

func TestCameraAbbrev(t *testing.T) {
	cases := map[string]string{
		"DMC-TZ101":   "_TZ101",
		"Some Camera": "_Some Camera",
		"":            "",
	}
	for model, want := range cases {
		if got := classify.CameraAbbrev(model); got != want {
			t.Fatalf("CameraAbbrev(%q) = %q, want %q", model, got, want)
		}
	}
}

func TestClassifyCollectsFlags(t *testing.T) {
	row := metadata.Row{BurstMode: "On", HDR: "On", SceneMode: "Sun1", Model: "DMC-TZ101"}
	c := classify.Classify(row)
	if c.Sequence != classify.SequenceSeries || !c.Series || !c.HDR || !c.Sun {
		t.Fatalf("unexpected classification %+v", c)
	}
	if c.Camera != "_TZ101" || c.ModePostfix != "_HDR" {
		t.Fatalf("unexpected fragments %+v", c)
	}
}

func TestTablesAreCopies(t *testing.T) {
	models := classify.CameraModels()
	models["DMC-TZ101"] = "changed"
	if classify.CameraAbbrev("DMC-TZ101") != "_TZ101" {
		t.Fatal("mutating the returned table changed the classifier")
	}
}

func TestKeywordHelpers(t *testing.T) {
	if got := classify.SceneToTags("2Sunset$b"); !slices.Equal(got, []string{"2Sunset$b", "sunset"}) {
		t.Fatalf("SceneToTags = %v", got)
	}
	if got := classify.ProcessToTags("HDRT-Natural2"); !slices.Equal(got, []string{"HDRT-Natural", "HDR"}) {
		t.Fatalf("ProcessToTags = %v", got)
	}
	if got := classify.ProcessToTags("Crop"); !slices.Equal(got, []string{"Crop"}) {
		t.Fatalf("ProcessToTags = %v", got)
	}
	if !classify.IsSceneAbbreviation("MINI") || !classify.IsSceneAbbreviation("BBS") || classify.IsSceneAbbreviation("XYZ") {
		t.Fatal("IsSceneAbbreviation mismatch")
	}
	if !classify.IsProcessTag("PANO3") || classify.IsProcessTag("Sunset") {
		t.Fatal("IsProcessTag mismatch")
	}
}
