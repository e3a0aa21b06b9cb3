package grouping

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"shotname/internal/metadata"
)

// ParseTimeFile reads "name, start, end" lines. Blank lines and lines
// starting with "#" are skipped; any other malformed line is an error.
func ParseTimeFile(r io.Reader) ([]Interval, error) {
	var intervals []Interval
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("time file line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, fmt.Errorf("time file line %d: empty directory name", lineNo)
		}
		first, err := metadata.ParseReportTime(fields[1])
		if err != nil {
			return nil, fmt.Errorf("time file line %d: start: %w", lineNo, err)
		}
		last, err := metadata.ParseReportTime(fields[2])
		if err != nil {
			return nil, fmt.Errorf("time file line %d: end: %w", lineNo, err)
		}
		if last.Before(first) {
			return nil, fmt.Errorf("time file line %d: end before start", lineNo)
		}
		intervals = append(intervals, Interval{Name: name, First: first, Last: last})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read time file: %w", err)
	}
	return intervals, nil
}

// WriteTimeFile writes intervals in the format ParseTimeFile reads.
func WriteTimeFile(w io.Writer, intervals []Interval) error {
	for _, iv := range intervals {
		if strings.Contains(iv.Name, ",") {
			return fmt.Errorf("directory name %q contains a comma", iv.Name)
		}
		if _, err := fmt.Fprintf(w, "%-55s, %s, %s\n", iv.Name,
			iv.First.Format(metadata.ReportLayout), iv.Last.Format(metadata.ReportLayout)); err != nil {
			return err
		}
	}
	return nil
}
