package fileops

import (
	"context"
	"errors"
	"strings"
)

// Renamer renames a file within its directory.
type Renamer interface {
	Rename(dir, oldName, newName string) error
}

// RenamePair is one planned rename.
type RenamePair struct {
	Directory string
	Old       string
	New       string
}

// TempSuffix derives the commit suffix for a run, e.g. ".1b4e28ba.tmp".
func TempSuffix(runID string) string {
	id := strings.ReplaceAll(runID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "." + id + ".tmp"
}

// Commit applies pairs in two phases: every file is first renamed to its old
// name plus suffix, then to its new name. Names inside one batch can
// therefore swap freely. Pairs whose name does not change are skipped.
//
// When the context is cancelled or a rename fails, files not yet given their
// final name are returned to their old name where possible; files already
// renamed keep their new name.
func Commit(ctx context.Context, r Renamer, pairs []RenamePair, suffix string, progress func()) error {
	pending := make([]RenamePair, 0, len(pairs))
	for _, p := range pairs {
		if p.Old != p.New {
			pending = append(pending, p)
		}
	}

	for i, p := range pending {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, restore(r, pending[:i], suffix))
		}
		if err := r.Rename(p.Directory, p.Old, p.Old+suffix); err != nil {
			return errors.Join(err, restore(r, pending[:i], suffix))
		}
	}

	for i, p := range pending {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, restore(r, pending[i:], suffix))
		}
		if err := r.Rename(p.Directory, p.Old+suffix, p.New); err != nil {
			return errors.Join(err, restore(r, pending[i:], suffix))
		}
		if progress != nil {
			progress()
		}
	}
	return nil
}

func restore(r Renamer, pairs []RenamePair, suffix string) error {
	var errs []error
	for _, p := range pairs {
		if err := r.Rename(p.Directory, p.Old+suffix, p.Old); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
