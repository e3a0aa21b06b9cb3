package metadata

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"

	"shotname/internal/logging"
	"shotname/internal/services"
)

var exifFields = []struct {
	name   exif.FieldName
	column Column
}{
	{exif.DateTimeOriginal, ColDateTimeOriginal},
	{exif.SubSecTimeOriginal, ColSubSecTimeOriginal},
	{exif.Model, ColModel},
}

// ExifReader decodes embedded EXIF directly without an external tool. It only
// yields the primary columns plus sub-seconds and camera model, so tables it
// produces are always processed in easy mode.
type ExifReader struct {
	logger *slog.Logger
}

// NewExifReader returns the built-in EXIF reader.
func NewExifReader(logger *slog.Logger) *ExifReader {
	return &ExifReader{logger: logging.NewComponentLogger(logger, "exif")}
}

// Read implements Reader.
func (r *ExifReader) Read(ctx context.Context, dir string, recursive bool, ext string) (*Table, error) {
	files, err := ListFiles(ctx, dir, recursive, ext)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(files))
	seen := newPresence()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, tags, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		seen.add(tags)
	}
	SortRows(rows)
	return NewTable(rows, seen.columns()...), nil
}

func (r *ExifReader) readFile(path string) (Row, []string, error) {
	row := Row{Directory: filepath.Dir(path), FileName: filepath.Base(path)}
	tags := []string{string(ColDirectory), string(ColFileName)}

	f, err := os.Open(path)
	if err != nil {
		return Row{}, nil, services.Wrap(services.ErrFilesystem, "exif", "open", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		r.logger.Debug("no exif data", logging.String(logging.FieldFile, path), logging.Error(err))
		return row, tags, nil
	}
	for _, field := range exifFields {
		tag, err := x.Get(field.name)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		row.set(string(field.column), strings.TrimSpace(strings.TrimRight(value, "\x00")))
		tags = append(tags, string(field.column))
	}
	return row, tags, nil
}
