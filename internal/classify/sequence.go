package classify

import (
	"fmt"

	"shotname/internal/metadata"
)

// SequenceKind names the kind of shot sequence a row belongs to.
type SequenceKind string

const (
	SequenceNone       SequenceKind = ""
	SequenceBracket    SequenceKind = "bracket"
	SequenceSeries     SequenceKind = "series"
	SequenceStopMotion SequenceKind = "stop_motion"
	SequenceTimelapse  SequenceKind = "timelapse"
	Sequence4KPhoto    SequenceKind = "4k_photo"
)

// SequenceKindOf applies the precedence bracket, burst, stop-motion,
// timelapse, 4K photo.
func SequenceKindOf(row metadata.Row) SequenceKind {
	switch {
	case IsBracket(row):
		return SequenceBracket
	case IsSeries(row):
		return SequenceSeries
	case IsStopMotion(row):
		return SequenceStopMotion
	case IsTimelapse(row):
		return SequenceTimelapse
	case Is4KPhoto(row):
		return Sequence4KPhoto
	default:
		return SequenceNone
	}
}

// SequenceTag formats the sequence fragment of an image name for the given
// sequence index.
func SequenceTag(index int, row metadata.Row) string {
	switch SequenceKindOf(row) {
	case SequenceBracket:
		return fmt.Sprintf("B%d", index)
	case SequenceSeries:
		return fmt.Sprintf("S%02d", index)
	case SequenceStopMotion:
		return fmt.Sprintf("SM%03d", index)
	case SequenceTimelapse:
		return fmt.Sprintf("TL%03d", index)
	case Sequence4KPhoto:
		return "4KBSF"
	default:
		return ""
	}
}
