package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"shotname/internal/grouping"
	"shotname/internal/metadata"
	"shotname/internal/naming"
)

// stampLayout renders the MMDDHHmmss suffix of report file names.
const stampLayout = "0102150405"

// AuditFileName returns "newnames<ext>_MMDDHHmmss.txt".
func AuditFileName(ext string, now time.Time) string {
	return "newnames" + ext + "_" + now.Format(stampLayout) + ".txt"
}

// WriteAudit writes one line per record, and per raw companion, to a new
// audit log in dir and returns its path.
func WriteAudit(dir, ext string, now time.Time, records []naming.Record) (string, error) {
	path := filepath.Join(dir, AuditFileName(ext, now))
	err := writeFile(path, func(w *bufio.Writer) error {
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
			if r.HasRaw() {
				if _, err := fmt.Fprintln(w, r.RawString()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("write audit log: %w", err)
	}
	return path, nil
}

// WriteTimeRanges writes the intervals of an order run to
// "timetable_MMDDHHmmss.txt" in dir. The file can be fed back to
// order-timefile.
func WriteTimeRanges(dir string, now time.Time, groups []grouping.Interval) (string, error) {
	path := filepath.Join(dir, "timetable_"+now.Format(stampLayout)+".txt")
	err := writeFile(path, func(w *bufio.Writer) error {
		return grouping.WriteTimeFile(w, groups)
	})
	if err != nil {
		return "", fmt.Errorf("write time ranges: %w", err)
	}
	return path, nil
}

// AppendTimeTable appends intervals to the time file at path, creating it
// when needed.
func AppendTimeTable(path string, intervals []grouping.Interval) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open time table: %w", err)
	}
	w := bufio.NewWriter(file)
	if err := grouping.WriteTimeFile(w, intervals); err != nil {
		_ = file.Close()
		return fmt.Errorf("append time table: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("append time table: %w", err)
	}
	return file.Close()
}

// WriteTagListing renders the listed tags of every row as a text table into
// "tags_<group>_MMDDHHmmss.txt" in dir. Tags the table lacks are left out.
func WriteTagListing(dir, group string, now time.Time, table *metadata.Table, tags []metadata.Column) (string, error) {
	cols := []metadata.Column{metadata.ColFileName}
	for _, tag := range tags {
		if tag != metadata.ColFileName && table.Has(tag) {
			cols = append(cols, tag)
		}
	}
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Label()
	}
	rows := make([][]string, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		line := make([]string, len(cols))
		for j, c := range cols {
			line[j] = row.Value(c)
		}
		rows = append(rows, line)
	}

	path := filepath.Join(dir, "tags_"+group+"_"+now.Format(stampLayout)+".txt")
	err := writeFile(path, func(w *bufio.Writer) error {
		_, err := fmt.Fprintln(w, RenderTable(StyleText, headers, rows, nil))
		return err
	})
	if err != nil {
		return "", fmt.Errorf("write tag listing: %w", err)
	}
	return path, nil
}

// RecordRows converts naming records into table rows for RenderTable.
func RecordRows(records []naming.Record) ([]string, [][]string) {
	headers := []string{"#", "Directory", "Old name", "New name", "Captured", "Sequence"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		captured := ""
		if !r.Timestamp.IsZero() {
			captured = r.Timestamp.Format(metadata.ReportLayout)
		}
		newName := r.NewName
		if r.HasRaw() {
			newName += " (+" + r.RawNew + ")"
		}
		seq := ""
		if r.Sequence != "" {
			seq = fmt.Sprintf("%s %d", r.Sequence, r.SequenceNumber)
		}
		rows = append(rows, []string{strconv.Itoa(r.Index + 1), r.Directory, r.OldName, newName, captured, seq})
	}
	return headers, rows
}

// GroupRows converts intervals into table rows for RenderTable.
func GroupRows(groups []grouping.Interval) ([]string, [][]string) {
	headers := []string{"Directory", "First", "Last", "Files"}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Name,
			g.First.Format(metadata.ReportLayout),
			g.Last.Format(metadata.ReportLayout),
			strconv.Itoa(g.Count),
		})
	}
	return headers, rows
}

func writeFile(path string, fn func(w *bufio.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := fn(w); err != nil {
		_ = file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
