package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shotname/internal/metadata"
	"shotname/internal/organizer"
)

func newTimeTableCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "timetable [dir]",
		Short: "Append the capture time range of every directory to a time file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.TimeTable(cmd.Context(), organizer.TimeTableRequest{
					Dir:    dirArg(args),
					Output: output,
				})
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				if len(res.Intervals) == 0 {
					p.line(statusInfo, "No dated files found")
					return nil
				}
				p.groups(res.Intervals)
				p.line(statusOK, "Appended %s to %s", plural(len(res.Intervals), "directory", "directories"), res.Path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Time file to append to (default from config, inside dir)")
	return cmd
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var (
		recursive bool
		extension string
		groups    []string
	)

	cmd := &cobra.Command{
		Use:   "info [dir]",
		Short: "Write tag listings for groups of related tags",
		Long:  "Write one tag listing per group to the saves directory.\n\nGroups: " + tagGroupNames(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.Info(cmd.Context(), organizer.InfoRequest{
					Dir:       dirArg(args),
					Recursive: recursive,
					Extension: extensionOrDefault(extension, ctx),
					Groups:    groups,
				})
				if err != nil {
					return err
				}
				p := newPrinter(cmd.OutOrStdout())
				if res.Files == 0 {
					p.line(statusInfo, "No files found")
					return nil
				}
				for _, path := range res.Paths {
					p.line(statusInfo, "Tag listing: %s", path)
				}
				p.line(statusOK, "Listed %s", plural(res.Files, "file", "files"))
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	flags.StringVar(&extension, "ext", "", "File extension to read (default image extension)")
	flags.StringSliceVarP(&groups, "group", "g", nil, "Tag groups to list (default all)")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Copy files selected by a tag value into a matches directory",
	}
	searchCmd.AddCommand(newSearchEqualCommand(ctx))
	searchCmd.AddCommand(newSearchRangeCommand(ctx))
	return searchCmd
}

type searchFlags struct {
	recursive bool
	planOnly  bool
	extension string
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.recursive, "recursive", "r", false, "Include subdirectories")
	flags.BoolVar(&f.planOnly, "plan", false, "List matches without copying")
	flags.StringVar(&f.extension, "ext", "", "File extension to search (default image extension)")
}

func newSearchEqualCommand(ctx *commandContext) *cobra.Command {
	var sf searchFlags
	cmd := &cobra.Command{
		Use:   "equal <tag> <value> [dir]",
		Short: "Select files whose tag equals value",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.SearchEqual(cmd.Context(), organizer.SearchRequest{
					Dir:       dirArg(args[2:]),
					Recursive: sf.recursive,
					Extension: extensionOrDefault(sf.extension, ctx),
					Tag:       args[0],
					Value:     args[1],
					PlanOnly:  sf.planOnly,
				})
				if err != nil {
					return err
				}
				printSearch(newPrinter(cmd.OutOrStdout()), res, sf.planOnly)
				return nil
			})
		},
	}
	sf.bind(cmd)
	return cmd
}

func newSearchRangeCommand(ctx *commandContext) *cobra.Command {
	var sf searchFlags
	cmd := &cobra.Command{
		Use:   "range <tag> <min> <max> [dir]",
		Short: "Select files whose numeric tag lies strictly between min and max",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			minValue, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse min %q: %w", args[1], err)
			}
			maxValue, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("parse max %q: %w", args[2], err)
			}
			return ctx.withService(cmd, func(svc *organizer.Service) error {
				res, err := svc.SearchRange(cmd.Context(), organizer.SearchRequest{
					Dir:       dirArg(args[3:]),
					Recursive: sf.recursive,
					Extension: extensionOrDefault(sf.extension, ctx),
					Tag:       args[0],
					Min:       minValue,
					Max:       maxValue,
					PlanOnly:  sf.planOnly,
				})
				if err != nil {
					return err
				}
				printSearch(newPrinter(cmd.OutOrStdout()), res, sf.planOnly)
				return nil
			})
		},
	}
	sf.bind(cmd)
	return cmd
}

func printSearch(p *printer, res *organizer.SearchResult, planOnly bool) {
	if len(res.Matches) == 0 {
		p.line(statusInfo, "No matching files")
		return
	}
	for _, path := range res.Matches {
		fmt.Fprintln(p.out, path)
	}
	if planOnly {
		p.line(statusInfo, "%s matched", plural(len(res.Matches), "file", "files"))
		p.planNotice(true)
		return
	}
	p.line(statusOK, "Copied %s to %s", plural(len(res.Matches), "file", "files"), res.Target)
}

func extensionOrDefault(ext string, ctx *commandContext) string {
	if strings.TrimSpace(ext) != "" {
		return ext
	}
	if cfg := ctx.configValue(); cfg != nil {
		return cfg.Naming.ImageExtension
	}
	return ""
}

func tagGroupNames() string {
	groups := metadata.TagGroups()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
