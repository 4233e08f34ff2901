// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmlfmthook/cmd/qmlfmt-hook/internal/clierr"
	"qmlfmthook/internal/manifest"
)

// NewManifestCmd groups commands for the .pre-commit-hooks.yaml manifest.
func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect the pre-commit hook manifest",
	}

	cmd.AddCommand(newManifestValidateCmd())
	cmd.AddCommand(newManifestShowCmd())

	return cmd
}

func newManifestValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a hook manifest file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			m, err := manifest.Load(path)
			if err != nil {
				return clierr.Wrap(clierr.CodeInvalidInput, "loading manifest", err)
			}
			if err := m.Validate(); err != nil {
				return clierr.Wrap(clierr.CodeInvalidInput, "invalid manifest", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d hook(s), OK\n", path, len(m))
			return nil
		},
	}
}

func newManifestShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "List the hooks a manifest declares",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			m, err := manifest.Load(path)
			if err != nil {
				return clierr.Wrap(clierr.CodeInvalidInput, "loading manifest", err)
			}

			out := cmd.OutOrStdout()
			for _, h := range m {
				_, _ = fmt.Fprintf(out, "%s\t%s\t(entry: %s", h.ID, h.Name, h.Entry)
				if len(h.Args) > 0 {
					_, _ = fmt.Fprintf(out, " %v", h.Args)
				}
				_, _ = fmt.Fprintln(out, ")")
			}
			return nil
		},
	}
}
