package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// counterPattern matches the counter and optional sequence tag of a name this
// package generated, such as "_0012", "_0012S03", "_M01", "_007B2" or
// "_00124KBSF".
var counterPattern = regexp.MustCompile(`_M?(?:\d+?4KBSF|\d+(?:B\d+|S\d{2,}|SM\d{3,}|TL\d{3,})?)`)

var leadingCounter = regexp.MustCompile(`^(?:` + counterPattern.String() + `)`)

// ExtractPostfix returns the part of filename that follows its last counter
// and sequence tag, without the extension. Camera-original names yield "".
// A postfix that itself ends in "_<digits>" is taken for the counter; use
// ExtractPostfixAfter when the generated prefix is known.
func ExtractPostfix(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	matches := counterPattern.FindAllStringIndex(base, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		rest := base[matches[i][1]:]
		if rest == "" || rest[0] == '_' {
			return rest
		}
	}
	return ""
}

// ExtractPostfixAfter reads the counter directly behind prefix when filename
// starts with it, so everything after that counter is the postfix. Other
// names fall back to ExtractPostfix.
func ExtractPostfixAfter(filename, prefix string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if prefix != "" && strings.HasPrefix(base, prefix) {
		rest := base[len(prefix):]
		if loc := leadingCounter.FindStringIndex(rest); loc != nil {
			tail := rest[loc[1]:]
			if tail == "" || tail[0] == '_' {
				return tail
			}
		}
	}
	return ExtractPostfix(filename)
}

// MergePostfix combines a freshly computed mode postfix with the one already
// present in the old name. When the old postfix contains the new one it is
// kept as is, otherwise it is appended.
func MergePostfix(fresh, old string) string {
	if strings.Contains(old, fresh) {
		return old
	}
	return fresh + old
}
