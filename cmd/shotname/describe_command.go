package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shotname/internal/organizer"
)

func newDescribeCommand(ctx *commandContext) *cobra.Command {
	var (
		planOnly  bool
		recursive bool
		extension string
		sheets    []string
	)

	cmd := &cobra.Command{
		Use:   "describe [dir]",
		Short: "Write titles, keywords and locations from CSV sheets into files",
		Long: "Match the rows of CSV sheets to files by name and counter range and write\n" +
			"the resulting title, keywords, description and location through exiftool.\n" +
			"Sheets with a filename_part column describe processing steps. Without\n" +
			"--sheet every *.csv file in dir is read.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.Describe(cmd.Context(), organizer.DescribeRequest{
					Dir:       dirArg(args),
					Recursive: recursive,
					Extension: extensionOrDefault(extension, ctx),
					Sheets:    sheets,
					PlanOnly:  planOnly,
				})
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				if len(res.Files) == 0 {
					p.line(statusInfo, "No files matched the sheets")
					return nil
				}
				rows := make([][]string, 0, len(res.Files))
				for _, meta := range res.Files {
					rows = append(rows, []string{meta.FileName, meta.Title, strings.Join(meta.Tags, ", "), meta.Location.String()})
				}
				p.table([]string{"File", "Title", "Keywords", "Location"}, rows, nil)
				if planOnly {
					for _, meta := range res.Files {
						if tree := meta.Description(); !tree.Empty() {
							fmt.Fprintf(p.out, "%s\n%s\n", meta.FileName, tree.Format())
						}
					}
					p.planNotice(true)
					return nil
				}
				p.line(statusOK, "Wrote tags to %s", plural(res.Written, "file", "files"))
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&planOnly, "plan", false, "Show the matched data without writing tags")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	flags.StringVar(&extension, "ext", "", "File extension to describe (default image extension)")
	flags.StringSliceVar(&sheets, "sheet", nil, "CSV sheets to read (default *.csv in dir)")
	return cmd
}
