package metadata

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"shotname/internal/services"
)

// Reader extracts a metadata table for the media files in dir whose extension
// matches ext (case-insensitive; empty ext matches every supported kind).
// Returned rows are sorted by capture time.
type Reader interface {
	Read(ctx context.Context, dir string, recursive bool, ext string) (*Table, error)
}

// TagWriter writes tag values back into a media file.
type TagWriter interface {
	WriteTags(ctx context.Context, path string, tags map[string][]string) error
}

// ListFiles returns the files below dir matching ext, sorted by path. Hidden
// files and directories are skipped.
func ListFiles(ctx context.Context, dir string, recursive bool, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if path == dir {
				return nil
			}
			if !recursive || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			return nil
		}
		if matchesExtension(name, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "read", "list files", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func matchesExtension(name, ext string) bool {
	fileExt := filepath.Ext(name)
	if ext == "" {
		return KindOf(fileExt) != KindUnknown
	}
	return strings.EqualFold(fileExt, ext)
}

// SortRows orders rows by capture time, then directory and file name. Rows
// with unparsable timestamps sort first.
func SortRows(rows []Row) {
	times := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		t, _ := row.CaptureTime()
		times[row.Path()] = t
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := times[rows[i].Path()], times[rows[j].Path()]
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		if rows[i].Directory != rows[j].Directory {
			return rows[i].Directory < rows[j].Directory
		}
		return rows[i].FileName < rows[j].FileName
	})
}

// presence tracks which tags every row reported.
type presence struct {
	counts map[string]int
	rows   int
}

func newPresence() *presence {
	return &presence{counts: make(map[string]int)}
}

func (p *presence) add(tags []string) {
	p.rows++
	for _, tag := range tags {
		p.counts[tag]++
	}
}

func (p *presence) columns() []Column {
	cols := make([]Column, 0, len(p.counts))
	for tag, n := range p.counts {
		if n == p.rows {
			cols = append(cols, Column(tag))
		}
	}
	return cols
}
