package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dataobject/conformance"
	"dataobject/internal/config"
)

func newConformCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "conform [DIR|FILE]...",
		Short: "Run YAML conformance suites",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = config.SuitePaths()
			}

			tests, err := conformance.Load(paths...)
			if err != nil {
				return err
			}

			results := conformance.NewRunner(zap.L()).RunAll(tests)
			out := cmd.OutOrStdout()
			for _, r := range results {
				name := r.Test.File + ": " + r.Test.Test.Name
				switch {
				case r.Skipped:
					if verbose {
						fmt.Fprintf(out, "SKIP %s (%s)\n", name, r.SkipReason)
					}
				case r.Passed:
					if verbose {
						fmt.Fprintf(out, "PASS %s\n", name)
					}
				default:
					fmt.Fprintf(out, "FAIL %s: %v\n", name, r.Error)
				}
			}

			stats := conformance.ComputeStats(results)
			fmt.Fprintln(out, conformance.FormatStats(stats))
			if stats.Failed > 0 {
				return errors.Errorf("%d conformance tests failed", stats.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list passing and skipped tests")
	return cmd
}
