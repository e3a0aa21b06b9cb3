package organizer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"shotname/internal/classify"
	"shotname/internal/describe"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/services"
)

// DescribeRequest applies description sheets to the files in Dir.
type DescribeRequest struct {
	Dir       string
	Recursive bool
	Extension string
	// Sheets are CSV files; empty means every *.csv directly in Dir.
	Sheets   []string
	PlanOnly bool
}

// DescribeResult lists the files a sheet row applied to.
type DescribeResult struct {
	Files   []*describe.FileMetaData
	Written int
}

// Describe writes titles, keywords, descriptions and location tags from
// CSV sheets into the matching files. Sheets with a filename_part column are
// processing sheets, all others description sheets. Scene and processing
// fragments of the file name add their keywords.
func (s *Service) Describe(ctx context.Context, req DescribeRequest) (*DescribeResult, error) {
	const command = "describe"

	if s.tags == nil && !req.PlanOnly {
		return nil, services.Wrap(services.ErrConfiguration, command, "check tag writer", "writing tags needs exiftool", nil)
	}

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	sheets := req.Sheets
	if len(sheets) == 0 {
		sheets, err = filepath.Glob(filepath.Join(r.dir, "*.csv"))
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, command, "find sheets", r.dir, err)
		}
	}
	if len(sheets) == 0 {
		return nil, services.Wrap(services.ErrValidation, command, "find sheets", "no csv sheets in "+r.dir, nil)
	}
	var descriptions, processing []map[string]string
	for _, path := range sheets {
		rows, err := readSheet(path)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, command, "read sheet", path, err)
		}
		if len(rows) == 0 {
			continue
		}
		if _, ok := rows[0]["filename_part"]; ok {
			processing = append(processing, rows...)
		} else {
			descriptions = append(descriptions, rows...)
		}
	}

	files, err := metadata.ListFiles(r.ctx, r.dir, req.Recursive, req.Extension)
	if err != nil {
		return nil, err
	}
	programs := describe.Programs{HDR: s.cfg.Describe.HDRProgram, Panorama: s.cfg.Describe.PanoramaProgram}
	result := &DescribeResult{}
	for _, path := range files {
		meta := describe.NewFileMetaData(filepath.Dir(path), filepath.Base(path))
		for _, row := range descriptions {
			meta.Update(row)
		}
		for _, row := range processing {
			meta.UpdateProcessing(row, programs)
		}
		if !meta.Matched() {
			continue
		}
		meta.AddTags(nameKeywords(meta.FileName)...)
		result.Files = append(result.Files, meta)
	}
	r.logger.Info("descriptions matched",
		logging.Int("files", len(files)),
		logging.Int("matched", len(result.Files)),
	)
	if req.PlanOnly {
		return result, nil
	}

	s.progress.Start("Writing tags", len(result.Files))
	defer s.progress.Finish()
	for _, meta := range result.Files {
		if err := r.ctx.Err(); err != nil {
			return result, err
		}
		path := filepath.Join(meta.Directory, meta.FileName)
		if err := s.tags.WriteTags(r.ctx, path, meta.TagMap()); err != nil {
			return result, err
		}
		result.Written++
		s.progress.Increment()
	}
	r.logger.Info("tags written", logging.Int("files", result.Written))
	return result, nil
}

func readSheet(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return describe.ReadSheet(file)
}

// nameKeywords derives keywords from the "_"-separated fragments of a file
// name, e.g. "..._0012_HDR-Natural_SUN.JPG".
func nameKeywords(filename string) []string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	var out []string
	for _, part := range strings.Split(base, "_") {
		switch {
		case classify.IsSceneAbbreviation(part):
			out = append(out, classify.SceneToTags(part)...)
		case classify.IsProcessTag(part):
			out = append(out, classify.ProcessToTags(part)...)
		}
	}
	return out
}
