package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/barasher/go-exiftool"

	"shotname/internal/logging"
	"shotname/internal/services"
)

const extractBatchSize = 64

// Exiftool reads and writes tags through a stay-open exiftool process.
type Exiftool struct {
	binary string
	logger *slog.Logger
}

// NewExiftool returns an exiftool backed reader. An empty binary uses the
// exiftool found on PATH.
func NewExiftool(binary string, logger *slog.Logger) *Exiftool {
	return &Exiftool{
		binary: strings.TrimSpace(binary),
		logger: logging.NewComponentLogger(logger, "exiftool"),
	}
}

func (e *Exiftool) open() (*exiftool.Exiftool, error) {
	var opts []func(*exiftool.Exiftool) error
	if e.binary != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(e.binary))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "exiftool", "start", e.binary, err)
	}
	return et, nil
}

// Read implements Reader.
func (e *Exiftool) Read(ctx context.Context, dir string, recursive bool, ext string) (*Table, error) {
	files, err := ListFiles(ctx, dir, recursive, ext)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return NewTable(nil), nil
	}

	et, err := e.open()
	if err != nil {
		return nil, err
	}
	defer et.Close()

	rows := make([]Row, 0, len(files))
	seen := newPresence()
	for start := 0; start < len(files); start += extractBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+extractBatchSize, len(files))
		for _, info := range et.ExtractMetadata(files[start:end]...) {
			if info.Err != nil {
				return nil, services.Wrap(services.ErrExternalTool, "exiftool", "extract metadata", info.File, info.Err)
			}
			row, tags := rowFromFields(info.File, info.Fields)
			rows = append(rows, row)
			seen.add(tags)
		}
	}
	e.logger.Debug("metadata extracted",
		logging.String(logging.FieldDirectory, dir),
		logging.Int("files", len(rows)),
	)

	SortRows(rows)
	return NewTable(rows, seen.columns()...), nil
}

// WriteTags implements TagWriter. Multi-valued tags such as Keywords are
// written as lists; the original file is overwritten in place.
func (e *Exiftool) WriteTags(ctx context.Context, path string, tags map[string][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	et, err := e.open()
	if err != nil {
		return err
	}
	defer et.Close()

	meta := exiftool.EmptyFileMetadata()
	meta.File = path
	for key, values := range tags {
		if len(values) == 1 {
			meta.SetString(key, values[0])
			continue
		}
		meta.SetStrings(key, values)
	}
	infos := []exiftool.FileMetadata{meta}
	et.WriteMetadata(infos)
	if infos[0].Err != nil {
		return services.Wrap(services.ErrExternalTool, "exiftool", "write tags", path, infos[0].Err)
	}
	e.logger.Debug("tags written", logging.String(logging.FieldFile, path), logging.Int("tags", len(tags)))
	return nil
}

func rowFromFields(path string, fields map[string]interface{}) (Row, []string) {
	row := Row{
		Directory: filepath.Dir(path),
		FileName:  filepath.Base(path),
	}
	tags := []string{string(ColDirectory), string(ColFileName)}
	for key, value := range fields {
		switch Column(key) {
		case ColDirectory, ColFileName:
			continue
		}
		if key == "SourceFile" {
			continue
		}
		row.set(key, fieldString(value))
		tags = append(tags, key)
	}
	return row, tags
}

func fieldString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fieldString(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
