package organizer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"shotname/internal/config"
	"shotname/internal/fileops"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/services"
	"shotname/internal/snapshot"
)

// FileOps is the filesystem collaborator. fileops.FS implements it.
type FileOps interface {
	fileops.Renamer
	Exists(dir, name string) bool
	Move(files []fileops.FileRef, target string) error
	Copy(files []string, target string) error
}

// Progress receives per-file progress while a plan is applied.
type Progress interface {
	Start(label string, total int)
	Increment()
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(string, int) {}
func (nopProgress) Increment()        {}
func (nopProgress) Finish()           {}

// Service executes organizer commands.
type Service struct {
	cfg      *config.Config
	reader   metadata.Reader
	files    FileOps
	store    *snapshot.Store
	tags     metadata.TagWriter
	logger   *slog.Logger
	progress Progress
	now      func() time.Time
	newID    func() string
	lockDir  string
}

// Option customizes a Service.
type Option func(*Service)

// WithStore records every run in the snapshot store.
func WithStore(store *snapshot.Store) Option {
	return func(s *Service) { s.store = store }
}

// WithTagWriter enables the describe command.
func WithTagWriter(w metadata.TagWriter) Option {
	return func(s *Service) { s.tags = w }
}

// WithProgress reports commit progress.
func WithProgress(p Progress) Option {
	return func(s *Service) {
		if p != nil {
			s.progress = p
		}
	}
}

// WithClock overrides the time source used for report names and run stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs overrides run ID generation.
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithLockDir overrides the directory holding run locks.
func WithLockDir(dir string) Option {
	return func(s *Service) { s.lockDir = dir }
}

// New constructs a Service.
func New(cfg *config.Config, reader metadata.Reader, files FileOps, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		reader:   reader,
		files:    files,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		progress: nopProgress{},
		now:      time.Now,
		newID:    uuid.NewString,
		lockDir:  cfg.LockDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run carries the per-command state shared by every command.
type run struct {
	id      string
	command string
	dir     string
	started time.Time
	ctx     context.Context
	logger  *slog.Logger
	lock    *fileops.Lock
}

// begin resolves dir, takes its lock and annotates the context.
func (s *Service) begin(ctx context.Context, command, dir string) (*run, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, command, "resolve directory", dir, err)
	}
	lock, err := fileops.LockDirectory(s.lockDir, resolved)
	if err != nil {
		return nil, err
	}
	id := s.newID()
	ctx = services.WithRunID(services.WithCommand(ctx, command), id)
	r := &run{
		id:      id,
		command: command,
		dir:     resolved,
		started: s.now(),
		ctx:     ctx,
		logger:  logging.WithContext(ctx, s.logger).With(logging.String(logging.FieldDirectory, resolved)),
		lock:    lock,
	}
	return r, nil
}

func (r *run) end() {
	if err := r.lock.Release(); err != nil {
		r.logger.Warn("release run lock failed", logging.Error(err))
	}
}

// record stores the run header. A nil store makes every snapshot call a no-op.
func (s *Service) record(r *run, ext string, planOnly, easy bool) error {
	if s.store == nil {
		return nil
	}
	err := s.store.BeginRun(r.ctx, snapshot.Run{
		ID:        r.id,
		Command:   r.command,
		Directory: r.dir,
		Extension: ext,
		PlanOnly:  planOnly,
		EasyMode:  easy,
		StartedAt: r.started,
	})
	if err != nil {
		return services.Wrap(services.ErrFilesystem, r.command, "record run", r.dir, err)
	}
	return nil
}

func (s *Service) finish(r *run, status snapshot.Status, files int, runErr error) {
	if s.store == nil {
		return
	}
	// The caller's context may already be cancelled; the outcome is still recorded.
	if err := s.store.FinishRun(context.WithoutCancel(r.ctx), r.id, status, files, runErr); err != nil {
		r.logger.Warn("record run outcome failed", logging.Error(err))
	}
}

func finalStatus(planOnly bool, err error) snapshot.Status {
	switch {
	case err != nil:
		return snapshot.StatusFailed
	case planOnly:
		return snapshot.StatusPlanned
	default:
		return snapshot.StatusCompleted
	}
}

func resolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.New("not a directory")
	}
	return abs, nil
}

// unavailableErrors indicate a target that went away, e.g. an unplugged card.
var unavailableErrors = []error{
	syscall.ENODEV,
	syscall.ENOTCONN,
	syscall.EHOSTDOWN,
	syscall.ETIMEDOUT,
	syscall.EIO,
	syscall.ESTALE,
}

func isTargetUnavailable(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range unavailableErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func logApplyFailure(logger *slog.Logger, err error) {
	if isTargetUnavailable(err) {
		logger.Error("target directory became unavailable; check the mount and rerun", logging.Error(err))
		return
	}
	logger.Error("applying plan failed; completed operations were kept", logging.Error(err))
}

func columnNames(cols []metadata.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
