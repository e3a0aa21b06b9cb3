package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"shotname/internal/organizer"
)

// barProgress renders commit progress on a terminal.
type barProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// newProgress returns nil unless out is a terminal, which leaves the
// organizer on its silent default.
func newProgress(out io.Writer) organizer.Progress {
	if !isTerminal(out) {
		return nil
	}
	return &barProgress{out: out}
}

func (p *barProgress) Start(label string, total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *barProgress) Increment() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
