package metadata

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Row is the metadata of one media file. Typed fields cover every tag the
// classifier and naming engine read; everything else the extractor returned
// lands in Extra.
type Row struct {
	Directory          string            `json:"directory"`
	FileName           string            `json:"file_name"`
	DateTimeOriginal   string            `json:"date_time_original"`
	SubSecTimeOriginal string            `json:"sub_sec_time_original,omitempty"`
	Model              string            `json:"model,omitempty"`
	ImageQuality       string            `json:"image_quality,omitempty"`
	VideoFrameRate     string            `json:"video_frame_rate,omitempty"`
	AdvancedSceneMode  string            `json:"advanced_scene_mode,omitempty"`
	SceneMode          string            `json:"scene_mode,omitempty"`
	HDR                string            `json:"hdr,omitempty"`
	BracketSettings    string            `json:"bracket_settings,omitempty"`
	BurstMode          string            `json:"burst_mode,omitempty"`
	TimerRecording     string            `json:"timer_recording,omitempty"`
	SequenceNumber     string            `json:"sequence_number,omitempty"`
	Rotation           string            `json:"rotation,omitempty"`
	Label              string            `json:"label,omitempty"`
	Extra              map[string]string `json:"extra,omitempty"`
}

// Path joins Directory and FileName.
func (r Row) Path() string {
	return filepath.Join(r.Directory, r.FileName)
}

// Extension returns the file extension including the dot, as written on disk.
func (r Row) Extension() string {
	return filepath.Ext(r.FileName)
}

// CaptureTime parses DateTimeOriginal combined with SubSecTimeOriginal.
func (r Row) CaptureTime() (time.Time, error) {
	return ParseCaptureTime(r.DateTimeOriginal, r.SubSecTimeOriginal)
}

// Sequence returns the camera sequence number, 0 when absent or not numeric.
func (r Row) Sequence() int {
	value := strings.TrimSpace(r.SequenceNumber)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Value returns the string value of a typed column.
func (r Row) Value(c Column) string {
	switch c {
	case ColDirectory:
		return r.Directory
	case ColFileName:
		return r.FileName
	case ColDateTimeOriginal:
		return r.DateTimeOriginal
	case ColSubSecTimeOriginal:
		return r.SubSecTimeOriginal
	case ColModel:
		return r.Model
	case ColImageQuality:
		return r.ImageQuality
	case ColVideoFrameRate:
		return r.VideoFrameRate
	case ColAdvancedSceneMode:
		return r.AdvancedSceneMode
	case ColSceneMode:
		return r.SceneMode
	case ColHDR:
		return r.HDR
	case ColBracketSettings:
		return r.BracketSettings
	case ColBurstMode:
		return r.BurstMode
	case ColTimerRecording:
		return r.TimerRecording
	case ColSequenceNumber:
		return r.SequenceNumber
	case ColRotation:
		return r.Rotation
	case ColLabel:
		return r.Label
	default:
		return r.Extra[string(c)]
	}
}

// Tag looks up any tag by name, typed or extra.
func (r Row) Tag(name string) (string, bool) {
	c := Column(name)
	if c.IsTyped() {
		return r.Value(c), true
	}
	value, ok := r.Extra[name]
	return value, ok
}

// set assigns a tag value by name. Unknown names go to Extra.
func (r *Row) set(name, value string) {
	switch Column(name) {
	case ColDirectory:
		r.Directory = value
	case ColFileName:
		r.FileName = value
	case ColDateTimeOriginal:
		r.DateTimeOriginal = value
	case ColSubSecTimeOriginal:
		r.SubSecTimeOriginal = value
	case ColModel:
		r.Model = value
	case ColImageQuality:
		r.ImageQuality = value
	case ColVideoFrameRate:
		r.VideoFrameRate = value
	case ColAdvancedSceneMode:
		r.AdvancedSceneMode = value
	case ColSceneMode:
		r.SceneMode = value
	case ColHDR:
		r.HDR = value
	case ColBracketSettings:
		r.BracketSettings = value
	case ColBurstMode:
		r.BurstMode = value
	case ColTimerRecording:
		r.TimerRecording = value
	case ColSequenceNumber:
		r.SequenceNumber = value
	case ColRotation:
		r.Rotation = value
	case ColLabel:
		r.Label = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[name] = value
	}
}
