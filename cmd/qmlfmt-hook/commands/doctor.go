// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmlfmthook/cmd/qmlfmt-hook/internal/clierr"
	"qmlfmthook/internal/qmlformat"
)

// NewDoctorCmd reports which formatter executable a run would use.
func NewDoctorCmd() *cobra.Command {
	var qmlformatPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that a qmlformat executable is available",
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := qmlformat.Locate(qmlformatPath)
			if err != nil {
				return clierr.Wrap(clierr.CodeToolNotFound, "locating qmlformat", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "qmlformat: %s\n", tool.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&qmlformatPath, "qmlformat-path", "", "explicit path to the qmlformat binary")

	return cmd
}
