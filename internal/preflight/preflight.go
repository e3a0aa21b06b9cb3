package preflight

import (
	"shotname/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// When dir is non-empty the target directory is checked as well.
func RunAll(cfg *config.Config, dir string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Saves directory", cfg.Paths.SavesDir))
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))

	if dir != "" {
		results = append(results, CheckDirectoryAccess("Target directory", dir))
	}

	if cfg.Exiftool.Enabled {
		results = append(results, CheckExiftool(cfg.Exiftool.Binary))
	} else {
		results = append(results, Result{Name: "Exiftool", Passed: true, Detail: "Disabled (easy mode: capture time and model only)"})
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
