package sequence

import (
	"fmt"
	"strings"
	"time"
)

type token struct {
	field   byte
	width   int
	literal string
}

// DateFormat renders the date fragment of a name from a pattern such as
// "YYMM-DD". Runs of Y, M, D, H, m and s select the year, month, day, hour,
// minute and second; N is the run-local day counter. The run length is the
// number of digits. Every other character is copied literally.
type DateFormat struct {
	pattern string
	tokens  []token
}

// ParseDateFormat compiles pattern.
func ParseDateFormat(pattern string) (DateFormat, error) {
	f := DateFormat{pattern: pattern}
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			f.tokens = append(f.tokens, token{literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		if !strings.ContainsRune("YMDNHms", rune(ch)) {
			literal.WriteByte(ch)
			i++
			continue
		}
		flush()
		j := i
		for j < len(pattern) && pattern[j] == ch {
			j++
		}
		width := j - i
		if ch == 'Y' && width > 4 {
			return DateFormat{}, fmt.Errorf("date format %q: year wider than 4 digits", pattern)
		}
		f.tokens = append(f.tokens, token{field: ch, width: width})
		i = j
	}
	flush()
	return f, nil
}

// MustParseDateFormat is ParseDateFormat for constant patterns.
func MustParseDateFormat(pattern string) DateFormat {
	f, err := ParseDateFormat(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

func (f DateFormat) String() string {
	return f.pattern
}

// UsesDay reports whether the pattern distinguishes days. Without a day
// component a "new day" means a new month.
func (f DateFormat) UsesDay() bool {
	for _, tok := range f.tokens {
		if tok.field == 'D' || tok.field == 'N' {
			return true
		}
	}
	return false
}

// Format renders t. day is the 1-based day counter substituted for N.
func (f DateFormat) Format(t time.Time, day int) string {
	var b strings.Builder
	for _, tok := range f.tokens {
		if tok.field == 0 {
			b.WriteString(tok.literal)
			continue
		}
		var value int
		switch tok.field {
		case 'Y':
			value = t.Year()
		case 'M':
			value = int(t.Month())
		case 'D':
			value = t.Day()
		case 'N':
			value = day
		case 'H':
			value = t.Hour()
		case 'm':
			value = t.Minute()
		case 's':
			value = t.Second()
		}
		digits := fmt.Sprintf("%0*d", tok.width, value)
		if tok.field == 'Y' && len(digits) > tok.width {
			digits = digits[len(digits)-tok.width:]
		}
		b.WriteString(digits)
	}
	return b.String()
}

// IsNewDay reports whether t falls on a different calendar day than prev, or
// a different month when useDay is false.
func IsNewDay(t, prev time.Time, useDay bool) bool {
	if t.Year() != prev.Year() || t.Month() != prev.Month() {
		return true
	}
	return useDay && t.Day() != prev.Day()
}
