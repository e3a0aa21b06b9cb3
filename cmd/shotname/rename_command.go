package main

import (
	"github.com/spf13/cobra"

	"shotname/internal/organizer"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var (
		all        bool
		planOnly   bool
		recursive  bool
		noPostfix  bool
		prefix     string
		dateFormat string
		startIndex int
		extension  string
		rawExt     string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "rename [dir]",
		Short: "Rename files from their capture time and camera modes",
		Long: "Rename every file with the selected extension in capture order.\n\n" +
			"Names take the form <prefix><date>_<counter><sequence><modes>, for example\n" +
			"1805-23_TZ101_3B2_HDR.JPG. A RAW companion with the same base name is renamed\n" +
			"alongside its JPG. Without exiftool only the date and counter are used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				req := svc.DefaultRenameRequest(dirArg(args))
				flags := cmd.Flags()
				req.PlanOnly = planOnly
				if flags.Changed("recursive") {
					req.Recursive = recursive
				}
				if flags.Changed("no-postfix") {
					req.PreservePostfix = !noPostfix
				}
				if flags.Changed("prefix") {
					req.Prefix = prefix
				}
				if flags.Changed("date-format") {
					req.DateFormat = dateFormat
				}
				if flags.Changed("start") {
					req.StartIndex = startIndex
				}
				if flags.Changed("ext") {
					req.Extension = extension
				}
				if flags.Changed("raw-ext") {
					req.RawExtension = rawExt
				}
				if flags.Changed("name") {
					req.Name = name
				}

				p := newPrinter(cmd.OutOrStdout())
				if all {
					results, err := svc.RenameAll(cmd.Context(), req)
					for _, res := range results {
						printRename(p, res)
					}
					return err
				}
				res, err := svc.Rename(cmd.Context(), req)
				if err != nil {
					return err
				}
				printRename(p, res)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&all, "all", false, "Rename images, then videos with their own counter")
	flags.BoolVar(&planOnly, "plan", false, "Write the audit file and preview without renaming")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	flags.BoolVar(&noPostfix, "no-postfix", false, "Drop text following the old counter instead of keeping it")
	flags.StringVar(&prefix, "prefix", "", "Text placed before the date")
	flags.StringVar(&dateFormat, "date-format", "", "Date pattern: Y year, M month, D day, N day counter")
	flags.IntVar(&startIndex, "start", 1, "First counter value of each day")
	flags.StringVar(&extension, "ext", "", "File extension to rename (default from config)")
	flags.StringVar(&rawExt, "raw-ext", "", "Extension of RAW companions; empty disables pairing")
	flags.StringVar(&name, "name", "", "Text placed after the date")
	return cmd
}

func printRename(p *printer, res *organizer.RenameResult) {
	if res == nil {
		return
	}
	if len(res.Records) == 0 {
		p.line(statusInfo, "No %s files found", res.Extension)
		return
	}
	if res.EasyMode {
		p.line(statusWarn, "Advanced camera tags missing: names use date and counter only")
	}
	changed := res.Changed()
	p.records(changed)
	p.line(statusInfo, "Audit file: %s", res.AuditPath)
	if res.PlanOnly {
		p.line(statusInfo, "%s of %s would be renamed", plural(len(changed), res.Extension+" file", res.Extension+" files"), count(len(res.Records)))
		p.planNotice(true)
		return
	}
	p.line(statusOK, "Renamed %s (run %s)", plural(res.Renamed, "file", "files"), shortID(res.RunID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
