package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shotname/internal/config"
	"shotname/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [dir]",
		Short: "Check directories and the metadata extractor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var dir string
			if len(args) > 0 {
				dir, err = config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve directory: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			results := preflight.RunAll(cfg, dir)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%s failed", plural(len(failed), "check", "checks"))
			}
			return nil
		},
	}
}
