package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"shotname/internal/logging"
	"shotname/internal/services"
)

// FileRef names a file by directory and base name.
type FileRef struct {
	Directory string
	Name      string
}

// Path joins the reference.
func (f FileRef) Path() string {
	return filepath.Join(f.Directory, f.Name)
}

// FS implements the organizer's filesystem collaborator on the local disk.
type FS struct {
	logger *slog.Logger
}

// New returns a local filesystem implementation.
func New(logger *slog.Logger) *FS {
	return &FS{logger: logging.NewComponentLogger(logger, "fileops")}
}

// Exists reports whether dir/name exists.
func (f *FS) Exists(dir, name string) bool {
	_, err := os.Lstat(filepath.Join(dir, name))
	return err == nil
}

// Rename renames a file within its directory.
func (f *FS) Rename(dir, oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	src := filepath.Join(dir, oldName)
	dst := filepath.Join(dir, newName)
	if err := ensureAbsent(dst); err != nil {
		return services.Wrap(services.ErrFilesystem, "fileops", "rename", src, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return services.Wrap(services.ErrFilesystem, "fileops", "rename", src, err)
	}
	f.logger.Debug("renamed", logging.String(logging.FieldFile, src), logging.String("to", newName))
	return nil
}

// Move moves files into target, creating it when needed. Files already in
// target are left alone. Moves across filesystems fall back to a verified
// copy followed by removal of the source.
func (f *FS) Move(files []FileRef, target string) error {
	if len(files) == 0 {
		return nil
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, "fileops", "create directory", target, err)
	}
	for _, file := range files {
		src := file.Path()
		dst := filepath.Join(target, file.Name)
		if samePath(src, dst) {
			continue
		}
		if err := ensureAbsent(dst); err != nil {
			return services.Wrap(services.ErrFilesystem, "fileops", "move", src, err)
		}
		if err := moveFile(src, dst); err != nil {
			return services.Wrap(services.ErrFilesystem, "fileops", "move", src, err)
		}
		f.logger.Debug("moved", logging.String(logging.FieldFile, src), logging.String(logging.FieldDirectory, target))
	}
	return nil
}

// Copy copies files into target with size and checksum verification.
func (f *FS) Copy(files []string, target string) error {
	if len(files) == 0 {
		return nil
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, "fileops", "create directory", target, err)
	}
	for _, src := range files {
		dst := filepath.Join(target, filepath.Base(src))
		if err := ensureAbsent(dst); err != nil {
			return services.Wrap(services.ErrFilesystem, "fileops", "copy", src, err)
		}
		if err := CopyFileVerified(src, dst); err != nil {
			return services.Wrap(services.ErrFilesystem, "fileops", "copy", src, err)
		}
		f.logger.Debug("copied", logging.String(logging.FieldFile, src), logging.String(logging.FieldDirectory, target))
	}
	return nil
}

func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}
	if err := CopyFileVerified(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func ensureAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s already exists", path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
