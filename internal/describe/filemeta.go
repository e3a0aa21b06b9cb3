package describe

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^([-\w]+)_([0-9]+)[A-Z0-9]*`)

// Programs names the tools recorded for processed files.
type Programs struct {
	HDR      string
	Panorama string
}

// FileMetaData accumulates the descriptive data of one file.
type FileMetaData struct {
	Directory    string
	FileName     string
	MainName     string
	Counter      int
	Title        string
	Tags         []string
	Descriptions []string
	Location     Location

	description *Tree
	matched     bool
}

// NewFileMetaData parses the name prefix and counter out of filename. Names
// that do not follow the "<name>_<counter>" scheme only match sheet rows
// that leave main_name, first and last empty.
func NewFileMetaData(directory, filename string) *FileMetaData {
	m := &FileMetaData{
		Directory:   directory,
		FileName:    filename,
		Counter:     -1,
		description: NewTree(),
	}
	if match := namePattern.FindStringSubmatch(filename); match != nil {
		m.MainName = match[1]
		m.Counter, _ = strconv.Atoi(match[2])
	}
	return m
}

// Matched reports whether any sheet row applied to the file.
func (m *FileMetaData) Matched() bool {
	return m.matched
}

// Description returns the structured description tree.
func (m *FileMetaData) Description() *Tree {
	return m.description
}

// mismatch reports a non-empty column whose value fails accept.
func mismatch(data map[string]string, key string, accept func(string) bool) bool {
	value := strings.TrimSpace(data[key])
	return value != "" && !accept(value)
}

func (m *FileMetaData) counterAtLeast(value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && m.Counter >= 0 && n <= m.Counter
}

func (m *FileMetaData) counterAtMost(value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && m.Counter >= 0 && m.Counter <= n
}

// Update applies one description sheet row when its directory, main_name,
// first and last columns select this file. It reports whether it applied.
func (m *FileMetaData) Update(data map[string]string) bool {
	if mismatch(data, "directory", func(v string) bool { return strings.Contains(m.Directory, v) }) ||
		mismatch(data, "main_name", func(v string) bool { return v == m.MainName }) ||
		mismatch(data, "first", m.counterAtLeast) ||
		mismatch(data, "last", m.counterAtMost) {
		return false
	}

	if title := strings.TrimSpace(data["title"]); title != "" {
		m.Title = title
	}
	m.addTags(data["tags"])
	if desc := strings.TrimSpace(data["description"]); desc != "" {
		m.Descriptions = append(m.Descriptions, desc)
	}
	m.Location.Update(data)
	m.description.Set([]string{"Location"}, m.Location.String())
	m.matched = true
	return true
}

// UpdateProcessing applies one processing sheet row when its directory and
// filename_part columns select this file. Columns containing HDR, TM or PANO
// are recorded under Processing; any other filled column goes to
// Processing/misc.
func (m *FileMetaData) UpdateProcessing(data map[string]string, programs Programs) bool {
	if mismatch(data, "directory", func(v string) bool { return strings.Contains(m.Directory, v) }) ||
		mismatch(data, "filename_part", func(v string) bool { return strings.Contains(m.FileName, v) }) {
		return false
	}
	m.addTags(data["tags"])

	keys := sortedKeys(data)
	hdrKeys := filterKeys(data, keys, "HDR")
	tmKeys := filterKeys(data, keys, "TM")
	panoKeys := filterKeys(data, keys, "PANO")
	known := append([]string{"directory", "filename_part", "tags"}, hdrKeys...)
	known = append(known, tmKeys...)
	known = append(known, panoKeys...)

	set := func(path []string, keys []string) {
		for _, key := range keys {
			m.description.Set(append(slices.Clone(path), key), data[key])
		}
	}
	if len(hdrKeys) > 0 || len(tmKeys) > 0 {
		m.description.Set([]string{"Processing", "HDR", "program"}, programs.HDR)
	}
	set([]string{"Processing", "HDR", "HDR-setting"}, hdrKeys)
	set([]string{"Processing", "HDR", "HDR-Tonemapping"}, tmKeys)
	if len(panoKeys) > 0 {
		m.description.Set([]string{"Processing", "Panorama", "program"}, programs.Panorama)
		set([]string{"Processing", "Panorama"}, panoKeys)
	}
	var other []string
	for _, key := range keys {
		if data[key] != "" && !slices.Contains(known, key) {
			other = append(other, key)
		}
	}
	set([]string{"Processing", "misc"}, other)
	m.matched = true
	return true
}

// AddTags appends keywords, skipping duplicates and empty values.
func (m *FileMetaData) AddTags(tags ...string) {
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" && !slices.Contains(m.Tags, tag) {
			m.Tags = append(m.Tags, tag)
		}
	}
}

func (m *FileMetaData) addTags(list string) {
	m.AddTags(strings.Split(list, ",")...)
}

// TagMap flattens the collected data into exiftool tags. Without an explicit
// title the keywords, title-cased, become the title.
func (m *FileMetaData) TagMap() map[string][]string {
	title := m.Title
	if title == "" {
		title = cases.Title(language.Und).String(strings.Join(m.Tags, ", "))
	}
	descriptions := slices.Clone(m.Descriptions)
	if formatted := m.description.Format(); formatted != "" {
		descriptions = append(descriptions, formatted)
	}
	full := strings.Join(descriptions, "\n\n")

	tags := map[string][]string{
		"Label":      {m.FileName},
		"Identifier": {m.FileName},
	}
	if title != "" {
		tags["Title"] = []string{title}
	}
	if len(m.Tags) > 0 {
		tags["Keywords"] = slices.Clone(m.Tags)
		tags["Subject"] = slices.Clone(m.Tags)
	}
	if full != "" {
		tags["ImageDescription"] = []string{full}
		tags["XPComment"] = []string{full}
	}
	if !m.Location.IsZero() {
		for key, values := range m.Location.Tags() {
			values = nonEmpty(values...)
			if len(values) == 0 {
				continue
			}
			tags[key] = append(tags[key], values...)
		}
	}
	return tags
}

func sortedKeys(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func filterKeys(data map[string]string, keys []string, part string) []string {
	var out []string
	for _, key := range keys {
		if strings.Contains(key, part) && data[key] != "" {
			out = append(out, key)
		}
	}
	return out
}
