package organizer

import (
	"context"
	"path/filepath"
	"strings"

	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/naming"
	"shotname/internal/report"
	"shotname/internal/services"
	"shotname/internal/snapshot"
	"shotname/internal/textutil"
)

// RestoreRequest describes a restore-names run.
type RestoreRequest struct {
	Dir        string
	Recursive  bool
	Extensions []string
	PlanOnly   bool
}

// RestoreResult reports the names taken from the Label tag.
type RestoreResult struct {
	RunID      string
	Records    []naming.Record
	AuditPaths []string
	PlanOnly   bool
	Renamed    int
}

// RestoreNames renames files back to the name stored in their Label tag,
// which describe writes. Files without a label keep their name. Two files
// restoring to the same name abort the run before any rename.
func (s *Service) RestoreNames(ctx context.Context, req RestoreRequest) (*RestoreResult, error) {
	const command = "restore-names"

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

	result := &RestoreResult{RunID: r.id, PlanOnly: req.PlanOnly}
	byExt := make(map[string][]naming.Record)
	targets := make(map[string]string)
	for _, ext := range exts {
		table, err := s.reader.Read(r.ctx, r.dir, req.Recursive, ext)
		if err != nil {
			return nil, err
		}
		if table.Len() == 0 {
			continue
		}
		if err := table.Require(command, metadata.ColDirectory, metadata.ColFileName, metadata.ColLabel); err != nil {
			return nil, err
		}
		for _, row := range table.Rows() {
			label := textutil.SanitizeFileName(labelBase(row.Label, row.Extension()))
			if label == "" {
				r.logger.Warn("empty label, name kept", logging.String(logging.FieldFile, row.Path()))
				continue
			}
			rec := naming.Record{
				Index:     len(result.Records),
				Directory: row.Directory,
				OldName:   row.FileName,
				NewBase:   label,
				Extension: row.Extension(),
				NewName:   label + row.Extension(),
			}
			rec.Timestamp, _ = row.CaptureTime()
			key := filepath.Join(rec.Directory, rec.NewName)
			if previous, taken := targets[key]; taken {
				return nil, services.Wrap(services.ErrValidation, command, "plan names",
					row.Path()+" and "+previous+" both restore to "+rec.NewName, nil)
			}
			targets[key] = row.Path()
			result.Records = append(result.Records, rec)
			byExt[ext] = append(byExt[ext], rec)
		}
	}
	if len(result.Records) == 0 {
		r.logger.Info("no labelled files found")
		return result, nil
	}

	if err := s.record(r, "", req.PlanOnly, false); err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.SaveRecords(r.ctx, r.id, result.Records); err != nil {
			r.logger.Warn("snapshot records failed", logging.Error(err))
		}
	}
	for _, ext := range exts {
		if len(byExt[ext]) == 0 {
			continue
		}
		path, err := report.WriteAudit(s.cfg.Paths.SavesDir, ext, r.started, byExt[ext])
		if err != nil {
			err = services.Wrap(services.ErrFilesystem, command, "write audit log", s.cfg.Paths.SavesDir, err)
			s.finish(r, snapshot.StatusFailed, 0, err)
			return nil, err
		}
		result.AuditPaths = append(result.AuditPaths, path)
	}

	if req.PlanOnly {
		s.finish(r, snapshot.StatusPlanned, len(result.Records), nil)
		return result, nil
	}
	result.Renamed, err = s.commit(r, renamePairs(result.Records))
	s.finish(r, finalStatus(false, err), result.Renamed, err)
	if err != nil {
		return result, err
	}
	r.logger.Info("names restored", logging.Int("renamed", result.Renamed))
	return result, nil
}

// labelBase drops ext from label when the label carries the file's own
// extension, in any case. Describe stores the full file name.
func labelBase(label, ext string) string {
	label = strings.TrimSpace(label)
	if ext != "" && len(label) > len(ext) && strings.EqualFold(label[len(label)-len(ext):], ext) {
		return label[:len(label)-len(ext)]
	}
	return label
}
