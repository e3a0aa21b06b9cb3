package testsupport

import (
	"context"
	"path/filepath"

	"shotname/internal/metadata"
)

// StaticReader is an in-memory metadata.Reader. Files are discovered on disk
// and matched to Rows by base name; the first lookup miss drops every column
// except Directory and FileName, mirroring an extractor that could not read
// a file.
type StaticReader struct {
	Rows    map[string]metadata.Row
	Columns []metadata.Column
	// Reads counts Read calls.
	Reads int
}

// NewStaticReader returns a reader reporting columns for every known file.
func NewStaticReader(columns ...metadata.Column) *StaticReader {
	return &StaticReader{Rows: make(map[string]metadata.Row), Columns: columns}
}

// Add registers metadata for a base name.
func (r *StaticReader) Add(name string, row metadata.Row) {
	r.Rows[name] = row
}

// Read implements metadata.Reader.
func (r *StaticReader) Read(ctx context.Context, dir string, recursive bool, ext string) (*metadata.Table, error) {
	r.Reads++
	files, err := metadata.ListFiles(ctx, dir, recursive, ext)
	if err != nil {
		return nil, err
	}
	rows := make([]metadata.Row, 0, len(files))
	complete := true
	for _, path := range files {
		row, ok := r.Rows[filepath.Base(path)]
		if !ok {
			complete = false
		}
		row.Directory = filepath.Dir(path)
		row.FileName = filepath.Base(path)
		rows = append(rows, row)
	}
	metadata.SortRows(rows)
	present := []metadata.Column{metadata.ColDirectory, metadata.ColFileName}
	if complete {
		present = append(present, r.Columns...)
	}
	return metadata.NewTable(rows, present...), nil
}
