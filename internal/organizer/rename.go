package organizer

import (
	"context"
	"slices"

	"shotname/internal/fileops"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/naming"
	"shotname/internal/preflight"
	"shotname/internal/report"
	"shotname/internal/sequence"
	"shotname/internal/services"
	"shotname/internal/snapshot"
	"shotname/internal/textutil"
)

// RenameRequest describes one rename run.
type RenameRequest struct {
	Dir             string
	Recursive       bool
	Prefix          string
	DateFormat      string
	StartIndex      int
	PlanOnly        bool
	PreservePostfix bool
	// Extension selects the files and the naming scheme (.jpg or .mp4, any case).
	Extension    string
	RawExtension string
	Name         string
}

// RenameResult reports what a rename run decided and applied.
type RenameResult struct {
	RunID     string
	Extension string
	Records   []naming.Record
	AuditPath string
	EasyMode  bool
	PlanOnly  bool
	Digits    int
	Days      []sequence.DayCount
	// Renamed counts files given a new name, raw companions included.
	Renamed int
}

// Changed returns the records whose name differs from the current one.
func (r *RenameResult) Changed() []naming.Record {
	var out []naming.Record
	for _, rec := range r.Records {
		if !rec.Unchanged() {
			out = append(out, rec)
		}
	}
	return out
}

// DefaultRenameRequest fills a request for dir from the naming config.
func (s *Service) DefaultRenameRequest(dir string) RenameRequest {
	n := s.cfg.Naming
	return RenameRequest{
		Dir:             dir,
		Recursive:       n.Recursive,
		Prefix:          n.Prefix,
		DateFormat:      n.DateFormat,
		StartIndex:      n.StartIndex,
		PreservePostfix: n.PreservePostfix,
		Extension:       n.ImageExtension,
		RawExtension:    n.RawExtension,
		Name:            n.Name,
	}
}

// RenameAll renames images with req.StartIndex, then videos starting at 1.
// The video run is skipped when the image run fails.
func (s *Service) RenameAll(ctx context.Context, req RenameRequest) ([]*RenameResult, error) {
	images := req
	images.Extension = s.cfg.Naming.ImageExtension
	first, err := s.Rename(ctx, images)
	if err != nil {
		return nil, err
	}

	videos := req
	videos.Extension = s.cfg.Naming.VideoExtension
	videos.StartIndex = 1
	videos.RawExtension = ""
	second, err := s.Rename(ctx, videos)
	if err != nil {
		return []*RenameResult{first}, err
	}
	return []*RenameResult{first, second}, nil
}

// Rename names every file with req.Extension in capture order and commits
// the new names unless req.PlanOnly is set. Missing primary columns and
// unsupported extensions fail before any file is touched.
func (s *Service) Rename(ctx context.Context, req RenameRequest) (*RenameResult, error) {
	const command = "rename"

	kind := metadata.KindOf(req.Extension)
	if kind == metadata.KindUnknown {
		return nil, services.Wrap(services.ErrUnsupportedExtension, command, "select naming scheme", req.Extension, nil)
	}
	format, err := sequence.ParseDateFormat(req.DateFormat)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, command, "parse date format", req.DateFormat, err)
	}
	if req.StartIndex < 0 {
		return nil, services.Wrap(services.ErrValidation, command, "check start index", "start index must be >= 0", nil)
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
	result := &RenameResult{RunID: r.id, Extension: req.Extension, PlanOnly: req.PlanOnly}
	if table.Len() == 0 {
		r.logger.Info("no files to rename", logging.String("extension", req.Extension))
		return result, nil
	}
	if err := table.Require(command, metadata.PrimaryColumns...); err != nil {
		return nil, err
	}

	advanced := kind.AdvancedColumns()
	result.EasyMode = !table.Has(advanced...)
	if result.EasyMode {
		r.logger.Warn("advanced columns missing, counting every file",
			logging.String("missing", columnNames(table.Missing(advanced...))),
		)
	}

	policy := sequence.PerShot
	if result.EasyMode || kind == metadata.KindVideo {
		policy = sequence.PerRow
	}
	result.Digits, result.Days = sequence.CountDigits(table.Rows(), req.StartIndex, format.UsesDay(), policy)
	for _, day := range result.Days {
		r.logger.Info("files per date",
			logging.String("date", day.Date.Format("2006-01-02")),
			logging.Int("files", day.MaxCounter),
		)
	}

	opts := naming.Options{
		Prefix:          textutil.SanitizeFragment(req.Prefix),
		DateFormat:      format,
		StartIndex:      req.StartIndex,
		PreservePostfix: req.PreservePostfix,
		Name:            textutil.SanitizeFragment(req.Name),
		Kind:            kind,
		EasyMode:        result.EasyMode,
		RawExtension:    req.RawExtension,
		Digits:          result.Digits,
		Logger:          r.logger,
	}
	if req.RawExtension != "" {
		opts.Exists = s.files.Exists
	}
	result.Records, result.Digits = naming.BuildAll(table, opts)

	if err := s.record(r, req.Extension, req.PlanOnly, result.EasyMode); err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.SaveTable(r.ctx, r.id, table); err != nil {
			r.logger.Warn("snapshot table failed", logging.Error(err))
		}
		if err := s.store.SaveRecords(r.ctx, r.id, result.Records); err != nil {
			r.logger.Warn("snapshot records failed", logging.Error(err))
		}
	}

	result.AuditPath, err = report.WriteAudit(s.cfg.Paths.SavesDir, req.Extension, r.started, result.Records)
	if err != nil {
		err = services.Wrap(services.ErrFilesystem, command, "write audit log", s.cfg.Paths.SavesDir, err)
		s.finish(r, snapshot.StatusFailed, 0, err)
		return nil, err
	}
	r.logger.Info("rename planned",
		logging.Int("files", len(result.Records)),
		logging.Int("digits", result.Digits),
		logging.Bool("easy_mode", result.EasyMode),
		logging.String("audit_log", result.AuditPath),
	)

	if req.PlanOnly {
		s.finish(r, snapshot.StatusPlanned, len(result.Records), nil)
		return result, nil
	}

	pairs := renamePairs(result.Records)
	result.Renamed, err = s.commit(r, pairs)
	s.finish(r, finalStatus(false, err), result.Renamed, err)
	if err != nil {
		return result, err
	}
	r.logger.Info("rename completed", logging.Int("renamed", result.Renamed))
	return result, nil
}

func renamePairs(records []naming.Record) []fileops.RenamePair {
	pairs := make([]fileops.RenamePair, 0, len(records))
	for _, rec := range records {
		pairs = append(pairs, fileops.RenamePair{Directory: rec.Directory, Old: rec.OldName, New: rec.NewName})
		if rec.HasRaw() {
			pairs = append(pairs, fileops.RenamePair{Directory: rec.Directory, Old: rec.RawOld, New: rec.RawNew})
		}
	}
	return pairs
}

// commit checks that every touched directory is writable, then applies pairs
// in two phases. It returns the number of files that changed name.
func (s *Service) commit(r *run, pairs []fileops.RenamePair) (int, error) {
	var dirs []string
	changed := 0
	for _, p := range pairs {
		if p.Old == p.New {
			continue
		}
		changed++
		if !slices.Contains(dirs, p.Directory) {
			dirs = append(dirs, p.Directory)
		}
	}
	if changed == 0 {
		r.logger.Info("all files already carry their names")
		return 0, nil
	}
	for _, dir := range dirs {
		if check := preflight.CheckDirectoryAccess("Target directory", dir); !check.Passed {
			return 0, services.Wrap(services.ErrFilesystem, r.command, "check directory", check.Detail, nil)
		}
	}

	done := 0
	s.progress.Start("Renaming", changed)
	err := fileops.Commit(r.ctx, s.files, pairs, fileops.TempSuffix(r.id), func() {
		done++
		s.progress.Increment()
	})
	s.progress.Finish()
	if err != nil {
		logApplyFailure(r.logger, err)
		return done, services.Wrap(services.ErrFilesystem, r.command, "commit renames", r.dir, err)
	}
	return done, nil
}
