package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// SanitizeFragment prepares a fragment that is embedded inside a generated
// name. Besides SanitizeFileName it collapses inner whitespace into single
// dashes and drops dots so the fragment cannot fake an extension.
func SanitizeFragment(value string) string {
	value = SanitizeFileName(value)
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, ".", "")
	return strings.Join(strings.Fields(value), "-")
}
