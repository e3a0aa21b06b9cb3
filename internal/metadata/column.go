package metadata

// Column names a metadata tag the organizer understands. Values match the
// exiftool tag names so extractor output maps onto columns directly.
type Column string

const (
	ColDirectory          Column = "Directory"
	ColFileName           Column = "FileName"
	ColDateTimeOriginal   Column = "DateTimeOriginal"
	ColSubSecTimeOriginal Column = "SubSecTimeOriginal"
	ColModel              Column = "Model"
	ColImageQuality       Column = "ImageQuality"
	ColVideoFrameRate     Column = "VideoFrameRate"
	ColAdvancedSceneMode  Column = "AdvancedSceneMode"
	ColSceneMode          Column = "SceneMode"
	ColHDR                Column = "HDR"
	ColBracketSettings    Column = "BracketSettings"
	ColBurstMode          Column = "BurstMode"
	ColTimerRecording     Column = "TimerRecording"
	ColSequenceNumber     Column = "SequenceNumber"
	ColRotation           Column = "Rotation"
	ColLabel              Column = "Label"
)

// AllColumns lists every typed column in report order.
var AllColumns = []Column{
	ColDirectory,
	ColFileName,
	ColDateTimeOriginal,
	ColSubSecTimeOriginal,
	ColModel,
	ColImageQuality,
	ColVideoFrameRate,
	ColAdvancedSceneMode,
	ColSceneMode,
	ColHDR,
	ColBracketSettings,
	ColBurstMode,
	ColTimerRecording,
	ColSequenceNumber,
	ColRotation,
	ColLabel,
}

// PrimaryColumns must be present for any command to run.
var PrimaryColumns = []Column{ColDirectory, ColFileName, ColDateTimeOriginal}

// ImageColumns are needed for full image classification. Missing any of them
// switches the rename into easy mode.
var ImageColumns = []Column{
	ColImageQuality,
	ColHDR,
	ColAdvancedSceneMode,
	ColSceneMode,
	ColBracketSettings,
	ColBurstMode,
	ColSequenceNumber,
	ColSubSecTimeOriginal,
}

// VideoColumns are needed for full video classification.
var VideoColumns = []Column{
	ColImageQuality,
	ColHDR,
	ColAdvancedSceneMode,
	ColSceneMode,
	ColVideoFrameRate,
}

var columnLabels = map[Column]string{
	ColDirectory:          "Directory",
	ColFileName:           "File Name",
	ColDateTimeOriginal:   "Date/Time Original",
	ColSubSecTimeOriginal: "Sub Sec Time Original",
	ColModel:              "Camera Model Name",
	ColImageQuality:       "Image Quality",
	ColVideoFrameRate:     "Video Frame Rate",
	ColAdvancedSceneMode:  "Advanced Scene Mode",
	ColSceneMode:          "Scene Mode",
	ColHDR:                "HDR",
	ColBracketSettings:    "Bracket Settings",
	ColBurstMode:          "Burst Mode",
	ColTimerRecording:     "Timer Recording",
	ColSequenceNumber:     "Sequence Number",
	ColRotation:           "Rotation",
	ColLabel:              "Label",
}

// Label returns the human readable tag description used in reports.
func (c Column) Label() string {
	if label, ok := columnLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsTyped reports whether c is one of the typed Row fields.
func (c Column) IsTyped() bool {
	_, ok := columnLabels[c]
	return ok
}
