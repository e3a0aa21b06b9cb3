package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stripName removes leading and trailing counter digits and anything after a
// "$" marker, so "2Sunset$b" becomes "Sunset".
func stripName(name string) string {
	name = strings.Trim(name, "123456789")
	name, _, _ = strings.Cut(name, "$")
	return name
}

// SceneToTags returns the keywords for a scene description: the scene as
// written plus its lower-cased base name.
func SceneToTags(scene string) []string {
	return []string{scene, cases.Lower(language.Und).String(stripName(scene))}
}

// ProcessToTags returns the keywords for a processing step such as
// "HDR-Natural" or "PANO3": its base name plus the generic keyword implied by
// the step's prefix, when known.
func ProcessToTags(process string) []string {
	stripped := stripName(process)
	out := []string{stripped}
	main, _, _ := strings.Cut(stripped, "-")
	if keyword, ok := processTags[main]; ok {
		out = append(out, keyword)
	}
	return out
}

// IsSceneAbbreviation reports whether name is one of the scene or creative
// abbreviations used in file names.
func IsSceneAbbreviation(name string) bool {
	for _, abbrev := range sceneModes {
		if abbrev == name {
			return true
		}
	}
	for _, abbrev := range creativeModes {
		if abbrev == name {
			return true
		}
	}
	return false
}

// IsProcessTag reports whether name denotes a known processing step.
func IsProcessTag(name string) bool {
	main, _, _ := strings.Cut(stripName(name), "-")
	_, ok := processTags[main]
	return ok
}
