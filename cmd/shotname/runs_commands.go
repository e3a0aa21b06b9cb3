package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"shotname/internal/metadata"
	"shotname/internal/report"
	"shotname/internal/snapshot"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded command runs",
	}
	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *snapshot.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				if len(runs) == 0 {
					p.line(statusInfo, "No runs recorded")
					return nil
				}
				headers, rows := buildRunRows(runs, time.Now())
				p.table(headers, rows, []report.Align{report.AlignLeft, report.AlignLeft, report.AlignLeft, report.AlignRight})
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 lists all)")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var showRows bool
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the plan recorded for a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *snapshot.Store) error {
				run, err := store.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				printRunHeader(p, run)

				records, err := store.Records(cmd.Context(), run.ID)
				if err != nil {
					return err
				}
				p.records(records)

				groups, err := store.Groups(cmd.Context(), run.ID)
				if err != nil {
					return err
				}
				p.groups(groups)

				if showRows {
					stored, err := store.Rows(cmd.Context(), run.ID)
					if err != nil {
						return err
					}
					headers, rows := buildStoredRows(stored)
					p.table(headers, rows, []report.Align{report.AlignRight})
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showRows, "rows", false, "Include the metadata rows read by the run")
	return cmd
}

func buildRunRows(runs []snapshot.Run, now time.Time) ([]string, [][]string) {
	headers := []string{"Run", "Command", "Status", "Files", "Started", "Directory"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := string(run.Status)
		if run.PlanOnly && run.Status != snapshot.StatusPlanned {
			status += " (plan)"
		}
		rows = append(rows, []string{
			shortID(run.ID),
			run.Command,
			status,
			count(run.Files),
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			run.Directory,
		})
	}
	return headers, rows
}

func printRunHeader(p *printer, run *snapshot.Run) {
	kind := statusInfo
	switch run.Status {
	case snapshot.StatusCompleted:
		kind = statusOK
	case snapshot.StatusFailed:
		kind = statusError
	case snapshot.StatusRunning:
		kind = statusWarn
	}
	fmt.Fprintf(p.out, "Run:        %s\n", run.ID)
	fmt.Fprintf(p.out, "Command:    %s\n", run.Command)
	fmt.Fprintf(p.out, "Directory:  %s\n", run.Directory)
	if run.Extension != "" {
		fmt.Fprintf(p.out, "Extension:  %s\n", run.Extension)
	}
	fmt.Fprintf(p.out, "Plan only:  %s\n", yesNo(run.PlanOnly))
	fmt.Fprintf(p.out, "Easy mode:  %s\n", yesNo(run.EasyMode))
	fmt.Fprintf(p.out, "Started:    %s\n", run.StartedAt.Format(metadata.ReportLayout))
	if !run.FinishedAt.IsZero() {
		fmt.Fprintf(p.out, "Finished:   %s\n", run.FinishedAt.Format(metadata.ReportLayout))
	}
	fmt.Fprintf(p.out, "Files:      %s\n", count(run.Files))
	p.line(kind, "Status:     %s", run.Status)
	if run.Error != "" {
		p.line(statusError, "Error:      %s", run.Error)
	}
}

func buildStoredRows(stored []snapshot.StoredRow) ([]string, [][]string) {
	headers := []string{"#", "File", "Captured", "Sequence", "Modes", "Camera"}
	rows := make([][]string, 0, len(stored))
	for _, sr := range stored {
		captured := ""
		if ts, err := sr.Row.CaptureTime(); err == nil && !ts.IsZero() {
			captured = ts.Format(metadata.ReportLayout)
		}
		rows = append(rows, []string{
			strconv.Itoa(sr.Index + 1),
			sr.Row.FileName,
			captured,
			string(sr.Classification.Sequence),
			sr.Classification.ModePostfix,
			sr.Classification.Camera,
		})
	}
	return headers, rows
}
