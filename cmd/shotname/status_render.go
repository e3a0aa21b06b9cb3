package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"shotname/internal/grouping"
	"shotname/internal/naming"
	"shotname/internal/report"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	return paint(kind, colorize).Sprint(base)
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func paint(kind statusKind, colorize bool) *color.Color {
	var c *color.Color
	switch kind {
	case statusOK:
		c = color.New(color.FgGreen)
	case statusWarn:
		c = color.New(color.FgYellow)
	case statusError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgBlue)
	}
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// printer writes command summaries, colouring them only on a terminal.
type printer struct {
	out      io.Writer
	colorize bool
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out, colorize: isTerminal(out)}
}

func (p *printer) line(kind statusKind, format string, args ...any) {
	fmt.Fprintln(p.out, paint(kind, p.colorize).Sprintf(format, args...))
}

func (p *printer) table(headers []string, rows [][]string, aligns []report.Align) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(p.out, report.RenderTable(report.StyleTerminal, headers, rows, aligns))
}

func (p *printer) records(records []naming.Record) {
	headers, rows := report.RecordRows(records)
	p.table(headers, rows, []report.Align{report.AlignRight})
}

func (p *printer) groups(groups []grouping.Interval) {
	headers, rows := report.GroupRows(groups)
	p.table(headers, rows, []report.Align{report.AlignLeft, report.AlignLeft, report.AlignLeft, report.AlignRight})
}

func (p *printer) planNotice(planOnly bool) {
	if planOnly {
		p.line(statusInfo, "Plan only: no files were changed")
	}
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return count(n) + " " + singular
	}
	return count(n) + " " + pluralForm
}
