package classify

import (
	"fmt"
	"strings"

	"shotname/internal/metadata"
	"shotname/internal/services"
)

// Is4KBurst reports a 4K burst video (4K photo mode recording).
func Is4KBurst(row metadata.Row) bool {
	return row.ImageQuality == "4k Movie" && row.VideoFrameRate == "29.97"
}

// Is4KFilm reports a regular 4K video.
func Is4KFilm(row metadata.Row) bool {
	return row.ImageQuality == "4k Movie"
}

// IsHighSpeed reports a high speed full HD video.
func IsHighSpeed(row metadata.Row) bool {
	return row.ImageQuality == "Full HD Movie" && row.AdvancedSceneMode == "HS"
}

// IsFullHD reports a standard full HD video.
func IsFullHD(row metadata.Row) bool {
	return row.ImageQuality == "Full HD Movie" && row.AdvancedSceneMode == "Off"
}

// IsSeries reports a burst shot.
func IsSeries(row metadata.Row) bool {
	return row.BurstMode == "On"
}

// IsBracket reports an exposure bracketing shot.
func IsBracket(row metadata.Row) bool {
	return row.BracketSettings != "" && row.BracketSettings != "No Bracket"
}

func IsStopMotion(row metadata.Row) bool {
	return row.TimerRecording == "Stop-motion Animation"
}

func IsTimelapse(row metadata.Row) bool {
	return row.TimerRecording == "Time Lapse"
}

// Is4KPhoto reports a still extracted from 4K photo mode.
func Is4KPhoto(row metadata.Row) bool {
	return row.ImageQuality == "8.2"
}

func IsCreative(row metadata.Row) bool {
	return row.SceneMode == "Creative Control" || row.SceneMode == "Digital Filter"
}

// IsScene reports a scene guide shot whose mode has a known abbreviation.
func IsScene(row metadata.Row) bool {
	if row.SceneMode == "" || row.SceneMode == "Off" {
		return false
	}
	_, ok := sceneModes[row.AdvancedSceneMode]
	return ok
}

func IsHDR(row metadata.Row) bool {
	return row.HDR != "" && row.HDR != "Off"
}

func IsSun(row metadata.Row) bool {
	return row.SceneMode == "Sun1" || row.SceneMode == "Sun2"
}

// RecordModeTag returns the video recording mode fragment.
func RecordModeTag(row metadata.Row) string {
	switch {
	case Is4KBurst(row):
		return "_4KB"
	case Is4KFilm(row):
		return "_4K"
	case IsHighSpeed(row):
		return "_HS"
	case IsFullHD(row):
		return "_FHD"
	default:
		return ""
	}
}

// ModePostfix returns the scene, creative, or HDR fragment of an image name.
// Unrecognized creative filters yield an empty fragment.
func ModePostfix(row metadata.Row) string {
	postfix, _ := ModePostfixChecked(row)
	return postfix
}

// ModePostfixChecked is ModePostfix that also reports creative filter values
// missing from the abbreviation table. The error is informational; the
// returned fragment is always usable.
func ModePostfixChecked(row metadata.Row) (string, error) {
	switch {
	case IsScene(row):
		return "_" + sceneModes[row.AdvancedSceneMode], nil
	case IsCreative(row):
		abbrev, ok := creativeModes[row.AdvancedSceneMode]
		if !ok {
			return "", services.Wrap(services.ErrUnrecognizedValue, "classify", "creative mode",
				fmt.Sprintf("%q in %s", row.AdvancedSceneMode, row.FileName), nil)
		}
		return "_" + abbrev, nil
	case IsHDR(row):
		return "_HDR", nil
	default:
		return "", nil
	}
}

// CameraAbbrev returns "_" plus the short camera model, or "" for an empty
// model. Unknown models pass through unchanged.
func CameraAbbrev(model string) string {
	model = strings.TrimSpace(model)
	if short, ok := cameraModels[model]; ok {
		model = short
	}
	if model == "" {
		return ""
	}
	return "_" + model
}

// Classification collects every capture-mode fact about a row.
type Classification struct {
	Sequence    SequenceKind `json:"sequence"`
	Series      bool         `json:"series,omitempty"`
	Bracket     bool         `json:"bracket,omitempty"`
	StopMotion  bool         `json:"stop_motion,omitempty"`
	Timelapse   bool         `json:"timelapse,omitempty"`
	Photo4K     bool         `json:"photo_4k,omitempty"`
	Scene       bool         `json:"scene,omitempty"`
	Creative    bool         `json:"creative,omitempty"`
	HDR         bool         `json:"hdr,omitempty"`
	Sun         bool         `json:"sun,omitempty"`
	RecordMode  string       `json:"record_mode,omitempty"`
	ModePostfix string       `json:"mode_postfix,omitempty"`
	Camera      string       `json:"camera,omitempty"`
}

// Classify evaluates every predicate for row.
func Classify(row metadata.Row) Classification {
	return Classification{
		Sequence:    SequenceKindOf(row),
		Series:      IsSeries(row),
		Bracket:     IsBracket(row),
		StopMotion:  IsStopMotion(row),
		Timelapse:   IsTimelapse(row),
		Photo4K:     Is4KPhoto(row),
		Scene:       IsScene(row),
		Creative:    IsCreative(row),
		HDR:         IsHDR(row),
		Sun:         IsSun(row),
		RecordMode:  RecordModeTag(row),
		ModePostfix: ModePostfix(row),
		Camera:      CameraAbbrev(row.Model),
	}
}
