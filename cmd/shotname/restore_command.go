package main

import (
	"github.com/spf13/cobra"

	"shotname/internal/organizer"
)

func newRestoreNamesCommand(ctx *commandContext) *cobra.Command {
	var (
		planOnly   bool
		recursive  bool
		extensions []string
	)

	cmd := &cobra.Command{
		Use:   "restore-names [dir]",
		Short: "Rename files back to the name stored in their Label tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.RestoreNames(cmd.Context(), organizer.RestoreRequest{
					Dir:        dirArg(args),
					Recursive:  recursive,
					Extensions: extensions,
					PlanOnly:   planOnly,
				})
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				if len(res.Records) == 0 {
					p.line(statusInfo, "No labelled files to restore")
					return nil
				}
				p.records(res.Records)
				for _, path := range res.AuditPaths {
					p.line(statusInfo, "Audit file: %s", path)
				}
				if res.PlanOnly {
					p.line(statusInfo, "%s would be renamed", plural(len(res.Records), "file", "files"))
					p.planNotice(true)
					return nil
				}
				p.line(statusOK, "Restored %s (run %s)", plural(res.Renamed, "file", "files"), shortID(res.RunID))
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&planOnly, "plan", false, "Write the audit file without renaming")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	flags.StringSliceVar(&extensions, "ext", nil, "Extensions to restore (default image and video extensions)")
	return cmd
}
