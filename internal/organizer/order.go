package organizer

import (
	"context"
	"os"
	"path/filepath"

	"shotname/internal/fileops"
	"shotname/internal/grouping"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/report"
	"shotname/internal/sequence"
	"shotname/internal/services"
	"shotname/internal/snapshot"
)

// OrderRequest describes one order run.
type OrderRequest struct {
	Dir       string
	Recursive bool
	PlanOnly  bool
}

// OrderResult reports the directory plan of an order run.
type OrderResult struct {
	RunID string
	// Groups are the batch directories in capture order.
	Groups []grouping.Interval
	// Assignments place primary files, Secondary place videos.
	Assignments []grouping.Assignment
	Secondary   []grouping.Assignment
	ReportPath  string
	PlanOnly    bool
	Moved       int
}

// Order groups images into dated batch directories below req.Dir, routes
// burst shots into the series subdirectory and puts every video into the
// video subdirectory of the batch nearest in time. The directory time ranges
// are written to the saves directory in time file format.
func (s *Service) Order(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	const command = "order"

	dayFormat, err := sequence.ParseDateFormat(s.cfg.Grouping.DayFormat)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, command, "parse day format", s.cfg.Grouping.DayFormat, err)
	}

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	images, err := s.reader.Read(r.ctx, r.dir, req.Recursive, s.cfg.Naming.ImageExtension)
	if err != nil {
		return nil, err
	}
	result := &OrderResult{RunID: r.id, PlanOnly: req.PlanOnly}
	if images.Len() == 0 {
		r.logger.Info("no images to order", logging.String("extension", s.cfg.Naming.ImageExtension))
		return result, nil
	}
	if err := images.Require(command, metadata.PrimaryColumns...); err != nil {
		return nil, err
	}
	videos, err := s.reader.Read(r.ctx, r.dir, req.Recursive, s.cfg.Naming.VideoExtension)
	if err != nil {
		return nil, err
	}
	if videos.Len() > 0 {
		if err := videos.Require(command, metadata.PrimaryColumns...); err != nil {
			return nil, err
		}
	}

	grouped := grouping.Group(images.Rows(), grouping.Options{
		Thresholds: grouping.Thresholds{
			LowJump:   s.cfg.LowJump(),
			BigJump:   s.cfg.BigJump(),
			SizeLimit: s.cfg.Grouping.SizeLimit,
		},
		DayFormat: dayFormat,
		SeriesDir: s.cfg.Grouping.SeriesDir,
		Logger:    r.logger,
	})
	result.Groups = grouped.Groups
	result.Assignments = grouped.Assignments
	result.Secondary = grouping.AssignSecondary(videos.Rows(), grouped.Groups, s.cfg.Grouping.VideoDir)
	r.logger.Info("order planned",
		logging.Int("images", images.Len()),
		logging.Int("videos", videos.Len()),
		logging.Int("directories", len(result.Groups)),
	)

	if err := s.record(r, s.cfg.Naming.ImageExtension, req.PlanOnly, false); err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.SaveTable(r.ctx, r.id, images); err != nil {
			r.logger.Warn("snapshot table failed", logging.Error(err))
		}
		if err := s.store.SaveGroups(r.ctx, r.id, result.Groups); err != nil {
			r.logger.Warn("snapshot groups failed", logging.Error(err))
		}
	}
	result.ReportPath, err = report.WriteTimeRanges(s.cfg.Paths.SavesDir, r.started, result.Groups)
	if err != nil {
		err = services.Wrap(services.ErrFilesystem, command, "write time ranges", s.cfg.Paths.SavesDir, err)
		s.finish(r, snapshot.StatusFailed, 0, err)
		return nil, err
	}

	if req.PlanOnly {
		s.finish(r, snapshot.StatusPlanned, len(result.Assignments)+len(result.Secondary), nil)
		return result, nil
	}

	all := append(append([]grouping.Assignment(nil), result.Assignments...), result.Secondary...)
	result.Moved, err = s.move(r, all)
	s.finish(r, finalStatus(false, err), result.Moved, err)
	if err != nil {
		return result, err
	}
	r.logger.Info("order completed", logging.Int("moved", result.Moved))
	return result, nil
}

// OrderTimeFileRequest describes an order run driven by a time file.
type OrderTimeFileRequest struct {
	Dir string
	// TimeFile defaults to the configured time file inside Dir. Relative
	// paths are resolved against Dir.
	TimeFile   string
	Extensions []string
	Recursive  bool
	PlanOnly   bool
}

// OrderWithTimeFile moves files into the directories listed in a time file,
// each file going to the interval nearest its capture time. All extensions
// are read and checked before the first move.
func (s *Service) OrderWithTimeFile(ctx context.Context, req OrderTimeFileRequest) (*OrderResult, error) {
	const command = "order-timefile"

	exts := req.Extensions
	if len(exts) == 0 {
		exts = []string{s.cfg.Naming.ImageExtension, s.cfg.Naming.VideoExtension}
	}
	for _, ext := range exts {
		if metadata.KindOf(ext) == metadata.KindUnknown {
			return nil, services.Wrap(services.ErrUnsupportedExtension, command, "check extensions", ext, nil)
		}
	}

	r, err := s.begin(ctx, command, req.Dir)
	if err != nil {
		return nil, err
	}
	defer r.end()

	path := req.TimeFile
	if path == "" {
		path = s.cfg.Grouping.TimeFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	intervals, err := readTimeFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, command, "read time file", path, err)
	}
	if len(intervals) == 0 {
		return nil, services.Wrap(services.ErrValidation, command, "read time file", path+" lists no directories", nil)
	}

	result := &OrderResult{RunID: r.id, Groups: intervals, PlanOnly: req.PlanOnly, ReportPath: path}
	for _, ext := range exts {
		table, err := s.reader.Read(r.ctx, r.dir, req.Recursive, ext)
		if err != nil {
			return nil, err
		}
		if table.Len() == 0 {
			continue
		}
		if err := table.Require(command, metadata.PrimaryColumns...); err != nil {
			return nil, err
		}
		r.logger.Info("files matched to time file", logging.String("extension", ext), logging.Int("files", table.Len()))
		result.Assignments = append(result.Assignments, grouping.AssignSecondary(table.Rows(), intervals, "")...)
	}

	if err := s.record(r, "", req.PlanOnly, false); err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.SaveGroups(r.ctx, r.id, intervals); err != nil {
			r.logger.Warn("snapshot groups failed", logging.Error(err))
		}
	}
	if req.PlanOnly {
		s.finish(r, snapshot.StatusPlanned, len(result.Assignments), nil)
		return result, nil
	}

	result.Moved, err = s.move(r, result.Assignments)
	s.finish(r, finalStatus(false, err), result.Moved, err)
	if err != nil {
		return result, err
	}
	r.logger.Info("order completed", logging.Int("moved", result.Moved))
	return result, nil
}

func readTimeFile(path string) ([]grouping.Interval, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return grouping.ParseTimeFile(file)
}

// move applies assignments target by target, in first-seen order, and
// returns the number of files moved.
func (s *Service) move(r *run, assignments []grouping.Assignment) (int, error) {
	var targets []string
	batches := make(map[string][]fileops.FileRef)
	for _, a := range assignments {
		target := a.Target(r.dir)
		if filepath.Clean(a.Row.Directory) == target {
			continue
		}
		if _, ok := batches[target]; !ok {
			targets = append(targets, target)
		}
		batches[target] = append(batches[target], fileops.FileRef{Directory: a.Row.Directory, Name: a.Row.FileName})
	}

	total := 0
	for _, refs := range batches {
		total += len(refs)
	}
	s.progress.Start("Moving", total)
	defer s.progress.Finish()

	moved := 0
	for _, target := range targets {
		if err := r.ctx.Err(); err != nil {
			return moved, err
		}
		refs := batches[target]
		if err := s.files.Move(refs, target); err != nil {
			logApplyFailure(r.logger, err)
			return moved, err
		}
		moved += len(refs)
		for range refs {
			s.progress.Increment()
		}
		r.logger.Debug("files moved", logging.String("target", target), logging.Int("files", len(refs)))
	}
	return moved, nil
}
