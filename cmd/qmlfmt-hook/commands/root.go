// SPDX-License-Identifier: MIT

// Package commands contains the Cobra commands for the qmlfmt-hook CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"qmlfmthook/cmd/qmlfmt-hook/internal/clierr"
	"qmlfmthook/internal/qmlformat"
	"qmlfmthook/internal/runner"
	"qmlfmthook/internal/scanner"
)

var (
	rootQmlformatPath string
	rootUseSpaces     bool
	rootCheck         bool
	rootInPlace       bool
	rootTabSize       int
	rootMaxWorkers    int
	rootAll           bool
	rootStateDir      string
	rootVerbose       bool
)

// NewRootCmd constructs the qmlfmt-hook root Cobra command. The root
// command itself is the hook entry point: pre-commit passes the staged
// file paths as positional arguments.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("QMLFMT_HOOK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "qmlfmt-hook [flags] [file ...]",
		Short: "Pre-commit hook that formats QML files with qmlformat",
		Long: `qmlfmt-hook wraps the external qmlformat binary as a pre-commit hook.
It formats (or, with --check, verifies) every QML file it is given and
exits non-zero if any file failed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr())
			return runFormat(cmd, args)
		},
	}

	cmd.Flags().StringVar(&rootQmlformatPath, "qmlformat-path", "", "explicit path to the qmlformat binary")
	cmd.Flags().BoolVar(&rootUseSpaces, "use-spaces", false, "indent with spaces instead of tabs")
	cmd.Flags().BoolVar(&rootCheck, "check", false, "verify formatting without modifying files")
	cmd.Flags().BoolVar(&rootInPlace, "inplace", true, "rewrite files in place")
	cmd.Flags().IntVar(&rootTabSize, "tab-size", qmlformat.DefaultTabSize, "indentation width")
	cmd.Flags().IntVar(&rootMaxWorkers, "max-workers", 0, "number of concurrent formatter processes (0 = one per CPU)")
	cmd.Flags().BoolVar(&rootAll, "all", false, "format every tracked QML file instead of the given arguments")
	cmd.PersistentFlags().StringVar(&rootStateDir, "state-dir", ".qmlfmt-hook/run", "directory to store run state")
	cmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of qmlfmt-hook",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "qmlfmt-hook version %s\n", version)
		},
	})

	cmd.AddCommand(NewDoctorCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewResetCmd())
	cmd.AddCommand(NewManifestCmd())

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// A missing formatter is an environment defect and must fail even
	// when there is nothing to format.
	tool, err := qmlformat.Locate(rootQmlformatPath)
	if err != nil {
		return clierr.Wrap(clierr.CodeToolNotFound, "locating qmlformat", err)
	}
	slog.Debug("using formatter", "path", tool.Path)

	files := args
	if rootAll {
		wd, err := os.Getwd()
		if err != nil {
			return clierr.Wrap(clierr.CodeInternal, "resolving working directory", err)
		}
		files, err = scanner.New(wd).TrackedQMLFiles(ctx)
		if err != nil {
			return clierr.Wrap(clierr.CodeInternal, "listing tracked QML files", err)
		}
	}

	// pre-commit invokes the hook only for matching staged files; an
	// empty set means there is nothing to do.
	if len(files) == 0 {
		return nil
	}

	opts := qmlformat.Options{
		UseSpaces: rootUseSpaces,
		CheckOnly: rootCheck,
		InPlace:   rootInPlace,
		TabSize:   rootTabSize,
	}

	formatter := runner.FormatterFunc(func(ctx context.Context, path string) error {
		return tool.Format(ctx, path, opts)
	})

	store := runner.NewStateStore(rootStateDir)
	r := runner.NewRunner(formatter, store, rootMaxWorkers, cmd.OutOrStdout())

	// RunError carries its own exit code; main picks it up unchanged.
	return r.Run(ctx, files)
}

func setupLogging(w io.Writer) {
	if !rootVerbose {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level: slog.LevelDebug,
	})))
}
