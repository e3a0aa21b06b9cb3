package main

import (
	"github.com/spf13/cobra"

	"shotname/internal/organizer"
)

func newOrderCommand(ctx *commandContext) *cobra.Command {
	var planOnly, recursive bool

	cmd := &cobra.Command{
		Use:   "order [dir]",
		Short: "Move images into day and time-gap directories",
		Long: "Group images by capture time into directories named <day>_<nn>. A new\n" +
			"directory starts after the configured big time jump, or after the low jump\n" +
			"once a directory holds more than the size limit. Series shots go to a\n" +
			"subdirectory, and videos follow the group nearest their capture time.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.Order(cmd.Context(), organizer.OrderRequest{
					Dir:       dirArg(args),
					Recursive: recursive,
					PlanOnly:  planOnly,
				})
				if err != nil {
					return err
				}
				printOrder(newPrinter(cmd.OutOrStdout()), res)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&planOnly, "plan", false, "Write the time range report without moving files")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	return cmd
}

func newOrderTimeFileCommand(ctx *commandContext) *cobra.Command {
	var (
		planOnly   bool
		recursive  bool
		timeFile   string
		extensions []string
	)

	cmd := &cobra.Command{
		Use:   "order-timefile [dir]",
		Short: "Move files into the directories listed in a time file",
		Long: "Read a time file with one '<directory> <first> <last>' line per group, as\n" +
			"written by the timetable command, and move every file into the listed\n" +
			"directory whose time range is nearest its capture time.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.OrderWithTimeFile(cmd.Context(), organizer.OrderTimeFileRequest{
					Dir:        dirArg(args),
					TimeFile:   timeFile,
					Extensions: extensions,
					Recursive:  recursive,
					PlanOnly:   planOnly,
				})
				if err != nil {
					return err
				}
				printOrder(newPrinter(cmd.OutOrStdout()), res)
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&planOnly, "plan", false, "Report the assignment without moving files")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	flags.StringVar(&timeFile, "time-file", "", "Time file path (default from config, relative to dir)")
	flags.StringSliceVar(&extensions, "ext", nil, "Extensions to move (default image and video extensions)")
	return cmd
}

func printOrder(p *printer, res *organizer.OrderResult) {
	total := len(res.Assignments) + len(res.Secondary)
	if total == 0 {
		p.line(statusInfo, "No files to order")
		return
	}
	p.groups(res.Groups)
	if res.ReportPath != "" {
		p.line(statusInfo, "Time ranges: %s", res.ReportPath)
	}
	if len(res.Secondary) > 0 {
		p.line(statusInfo, "%s assigned to the nearest group", plural(len(res.Secondary), "video", "videos"))
	}
	if res.PlanOnly {
		p.line(statusInfo, "%s would be moved into %s", plural(total, "file", "files"), plural(len(res.Groups), "directory", "directories"))
		p.planNotice(true)
		return
	}
	p.line(statusOK, "Moved %s into %s", plural(res.Moved, "file", "files"), plural(len(res.Groups), "directory", "directories"))
}
