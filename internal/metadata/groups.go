package metadata

import "strings"

// TagGroup is a named set of tags listed together by the info command.
type TagGroup struct {
	Name    string
	Columns []Column
}

// TagGroups returns the info listings in display order. Groups mix typed
// columns with extractor tags that only live in Row.Extra.
func TagGroups() []TagGroup {
	return []TagGroup{
		{Name: "Basic", Columns: []Column{ColDateTimeOriginal, ColSubSecTimeOriginal, ColModel, "LensType", "ImageSize"}},
		{Name: "Mode", Columns: []Column{ColImageQuality, ColAdvancedSceneMode, ColSceneMode, ColHDR, "ShootingMode", "PhotoStyle"}},
		{Name: "Sequence", Columns: []Column{ColBurstMode, ColBracketSettings, ColSequenceNumber, ColTimerRecording}},
		{Name: "Exposure", Columns: []Column{"ExposureTime", "FNumber", "ISO", "ExposureCompensation", "FocalLength", "FocalLengthIn35mmFormat"}},
		{Name: "Video", Columns: []Column{ColVideoFrameRate, "Duration", "ImageWidth", "ImageHeight"}},
		{Name: "Location", Columns: []Column{"GPSLatitude", "GPSLongitude", "Country", "State", "City", "Location"}},
		{Name: "Description", Columns: []Column{ColLabel, ColRotation, "Title", "Keywords", "ImageDescription"}},
	}
}

// LookupTagGroup finds a group by case-insensitive name.
func LookupTagGroup(name string) (TagGroup, bool) {
	for _, g := range TagGroups() {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return TagGroup{}, false
}

// ParseColumn resolves a user supplied tag. Typed columns match by tag name
// or label, ignoring case and spaces; anything else is taken verbatim as an
// extractor tag name.
func ParseColumn(name string) Column {
	name = strings.TrimSpace(name)
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	for _, c := range AllColumns {
		if strings.ToLower(string(c)) == key || strings.ToLower(strings.ReplaceAll(c.Label(), " ", "")) == key {
			return c
		}
	}
	return Column(name)
}
