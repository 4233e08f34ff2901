// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"qmlfmthook/internal/runner"
)

// NewReportCmd prints the summary persisted by the last run.
func NewReportCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the last run's results",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := runner.NewStateStore(rootStateDir)
			last, err := store.ReadSummary()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if last == nil {
				if asJSON {
					_, _ = fmt.Fprintln(out, "{}")
				} else {
					_, _ = fmt.Fprintln(out, "No run state found.")
				}
				return nil
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			_, _ = fmt.Fprintf(out, "Status: %s\n", last.Status)
			if len(last.Failed) > 0 {
				_, _ = fmt.Fprintln(out, "Failed:")
				for _, f := range last.Failed {
					_, _ = fmt.Fprintf(out, "  - %s\n", f)
				}
			} else {
				_, _ = fmt.Fprintln(out, "All passed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output the summary as JSON")

	return cmd
}

// NewResetCmd clears persisted run state.
func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear run state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.NewStateStore(rootStateDir).Reset()
		},
	}
}
