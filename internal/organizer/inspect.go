package organizer

import (
	"context"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"shotname/internal/grouping"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/report"
	"shotname/internal/services"
)

// TimeTableRequest describes a timetable run.
type TimeTableRequest struct {
	Dir string
	// Output defaults to the configured time file inside Dir.
	Output string
}

// TimeTableResult lists the appended intervals.
type TimeTableResult struct {
	Intervals []grouping.Interval
	Path      string
}

// TimeTable appends the first and last capture time of every directory
// below req.Dir, root included, to a time file. Edited by hand, the file
// drives OrderWithTimeFile.
func (s *Service) TimeTable(ctx context.Context, req TimeTableRequest) (*TimeTableResult, error) {
	const command = "timetable"

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	var dirs []string
	err = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != r.dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, command, "walk directories", r.dir, err)
	}

	result := &TimeTableResult{Path: req.Output}
	if result.Path == "" {
		result.Path = filepath.Join(r.dir, s.cfg.Grouping.TimeFile)
	}
	for _, dir := range dirs {
		table, err := s.reader.Read(r.ctx, dir, false, "")
		if err != nil {
			return nil, err
		}
		iv, ok := spanOf(table)
		if !ok {
			continue
		}
		name, err := filepath.Rel(r.dir, dir)
		if err != nil {
			name = dir
		}
		iv.Name = name
		result.Intervals = append(result.Intervals, iv)
	}
	if len(result.Intervals) == 0 {
		r.logger.Info("no dated files found")
		return result, nil
	}
	if err := report.AppendTimeTable(result.Path, result.Intervals); err != nil {
		return nil, services.Wrap(services.ErrFilesystem, command, "append time table", result.Path, err)
	}
	r.logger.Info("time table written",
		logging.String("path", result.Path),
		logging.Int("directories", len(result.Intervals)),
	)
	return result, nil
}

// spanOf returns the capture time range of the rows with a readable time.
func spanOf(table *metadata.Table) (grouping.Interval, bool) {
	var iv grouping.Interval
	for _, row := range table.Rows() {
		ts, err := row.CaptureTime()
		if err != nil || ts.IsZero() {
			continue
		}
		if iv.Count == 0 || ts.Before(iv.First) {
			iv.First = ts
		}
		if iv.Count == 0 || ts.After(iv.Last) {
			iv.Last = ts
		}
		iv.Count++
	}
	return iv, iv.Count > 0
}

// InfoRequest selects tag groups to list.
type InfoRequest struct {
	Dir       string
	Recursive bool
	Extension string
	// Groups names metadata.TagGroups entries; empty lists every group.
	Groups []string
}

// InfoResult lists the written tag listings.
type InfoResult struct {
	Files int
	Paths []string
}

// Info writes one tag listing per selected group to the saves directory.
func (s *Service) Info(ctx context.Context, req InfoRequest) (*InfoResult, error) {
	const command = "info"

	groups := metadata.TagGroups()
	if len(req.Groups) > 0 {
		groups = groups[:0]
		for _, name := range req.Groups {
			group, ok := metadata.LookupTagGroup(name)
			if !ok {
				return nil, services.Wrap(services.ErrValidation, command, "select tag group", name, nil)
			}
			groups = append(groups, group)
		}
	}

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	table, err := s.reader.Read(r.ctx, r.dir, req.Recursive, req.Extension)
	if err != nil {
		return nil, err
	}
	result := &InfoResult{Files: table.Len()}
	if table.Len() == 0 {
		r.logger.Info("no files to list", logging.String("extension", req.Extension))
		return result, nil
	}
	for _, group := range groups {
		path, err := report.WriteTagListing(s.cfg.Paths.SavesDir, group.Name, r.started, table, group.Columns)
		if err != nil {
			return nil, services.Wrap(services.ErrFilesystem, command, "write tag listing", group.Name, err)
		}
		result.Paths = append(result.Paths, path)
	}
	r.logger.Info("tag listings written", logging.Int("groups", len(result.Paths)), logging.Int("files", table.Len()))
	return result, nil
}

// SearchRequest selects files by one tag. Value is used by SearchEqual,
// Min and Max by SearchRange.
type SearchRequest struct {
	Dir       string
	Recursive bool
	Extension string
	Tag       string
	Value     string
	Min       float64
	Max       float64
	PlanOnly  bool
}

// SearchResult lists the matching files and where they were copied.
type SearchResult struct {
	Matches []string
	Target  string
}

// SearchEqual copies every file whose tag equals req.Value into a "matches"
// directory below req.Dir.
func (s *Service) SearchEqual(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	return s.search(ctx, "search-equal", req, func(value string) bool {
		return value == req.Value
	})
}

// SearchRange copies every file whose numeric tag lies strictly between
// req.Min and req.Max into a "matches" directory below req.Dir. Values such
// as "1/200" or "24.0 mm" are understood; unparsable values never match.
func (s *Service) SearchRange(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if req.Min >= req.Max {
		return nil, services.Wrap(services.ErrValidation, "search-range", "check interval", "min must be below max", nil)
	}
	return s.search(ctx, "search-range", req, func(value string) bool {
		n, ok := parseNumber(value)
		return ok && req.Min < n && n < req.Max
	})
}

func (s *Service) search(ctx context.Context, command string, req SearchRequest, match func(string) bool) (*SearchResult, error) {
	if strings.TrimSpace(req.Tag) == "" {
		return nil, services.Wrap(services.ErrValidation, command, "check tag", "tag is required", nil)
	}
	tag := metadata.ParseColumn(req.Tag)

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	table, err := s.reader.Read(r.ctx, r.dir, req.Recursive, req.Extension)
	if err != nil {
		return nil, err
	}
	result := &SearchResult{Target: filepath.Join(r.dir, "matches")}
	if table.Len() == 0 {
		return result, nil
	}
	if err := table.Require(command, metadata.PrimaryColumns...); err != nil {
		return nil, err
	}
	if err := table.Require(command, tag); err != nil {
		return nil, err
	}
	for _, row := range table.Rows() {
		if filepath.Clean(row.Directory) == result.Target {
			continue
		}
		if match(row.Value(tag)) {
			result.Matches = append(result.Matches, row.Path())
		}
	}
	r.logger.Info("search finished",
		logging.String("tag", string(tag)),
		logging.Int("files", table.Len()),
		logging.Int("matches", len(result.Matches)),
	)
	if req.PlanOnly || len(result.Matches) == 0 {
		return result, nil
	}
	if err := s.files.Copy(result.Matches, result.Target); err != nil {
		return result, err
	}
	return result, nil
}

// parseNumber reads the leading number of a tag value, including fractions.
func parseNumber(value string) (float64, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, false
	}
	head := fields[0]
	if num, den, ok := strings.Cut(head, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	n, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
