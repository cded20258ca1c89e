// Package cmd defines the tsdoctor command line interface.
package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/tsdoctor/internal/command"
	"github.com/harrison/tsdoctor/internal/config"
	"github.com/harrison/tsdoctor/internal/diagnose"
	"github.com/harrison/tsdoctor/internal/logger"
	"github.com/harrison/tsdoctor/internal/report"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tsdoctor
func NewRootCommand() *cobra.Command {
	var (
		projectDir string
		verbose    bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "tsdoctor",
		Short: "Diagnose a TypeScript project's configuration and health",
		Long: `tsdoctor inspects a TypeScript project and prints a diagnostic report
covering compiler and runtime versions, tsconfig.json settings, the tooling
ecosystem declared in package.json, monorepo configuration, type-safety
smells ('any' annotations and type assertions), type errors, and compiler
performance counters.

It shells out to npx tsc, node, and grep; those tools must be on PATH for
the corresponding sections to produce findings. Command vectors and the
scanned source directory can be overridden in a .tsdoctor.yaml file in the
project root.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnosis(cmd.OutOrStdout(), projectDir, verbose, noColor)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&projectDir, "project", "p", ".", "project directory to diagnose")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log commands as they run")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// runDiagnosis wires up the doctor and runs the full check sequence.
func runDiagnosis(out io.Writer, projectDir string, verbose, noColor bool) error {
	cfg, err := config.LoadConfig(filepath.Join(projectDir, config.ConfigFileName))
	if err != nil {
		return err
	}

	var logWriter io.Writer
	logLevel := "info"
	if verbose {
		logWriter = os.Stderr
		logLevel = "debug"
	}

	doctor := diagnose.New(
		projectDir,
		cfg,
		command.NewExecRunner(projectDir),
		report.NewWriter(out, !noColor),
		logger.NewConsoleLogger(logWriter, logLevel),
	)

	doctor.Run(context.Background())
	return nil
}
