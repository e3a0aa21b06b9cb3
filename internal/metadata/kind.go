package metadata

import "strings"

// MediaKind selects the naming scheme and required columns for a file type.
type MediaKind int

const (
	KindUnknown MediaKind = iota
	KindImage
	KindVideo
)

// KindOf maps a file extension to its media kind. Matching ignores case; the
// extension itself is preserved verbatim elsewhere.
func KindOf(ext string) MediaKind {
	switch strings.ToLower(strings.TrimSpace(ext)) {
	case ".jpg":
		return KindImage
	case ".mp4":
		return KindVideo
	default:
		return KindUnknown
	}
}

// AdvancedColumns returns the columns whose absence triggers easy mode.
func (k MediaKind) AdvancedColumns() []Column {
	switch k {
	case KindImage:
		return ImageColumns
	case KindVideo:
		return VideoColumns
	default:
		return nil
	}
}

func (k MediaKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}
