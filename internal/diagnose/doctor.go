// Package diagnose implements the diagnostic checks tsdoctor runs against a
// TypeScript project.
//
// A Doctor runs eight independent checks in a fixed order; each reads the
// project's files or an external command's output and appends one
// self-contained section to the report. No check feeds another, and nothing
// survives across checks.
package diagnose

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harrison/tsdoctor/internal/command"
	"github.com/harrison/tsdoctor/internal/config"
	"github.com/harrison/tsdoctor/internal/logger"
	"github.com/harrison/tsdoctor/internal/report"
)

// Doctor runs diagnostic checks against one project directory.
type Doctor struct {
	// ProjectDir is the root of the inspected project.
	ProjectDir string

	// Config carries the source directory and command vectors.
	Config *config.Config

	// Runner executes external commands (tsc, node, grep).
	Runner command.Runner

	// Report receives the diagnostic output.
	Report *report.Writer

	// Log narrates command execution when verbose logging is enabled.
	Log *logger.ConsoleLogger
}

// New creates a Doctor for the given project directory.
// A nil log is replaced with a discarding logger.
func New(projectDir string, cfg *config.Config, runner command.Runner, rep *report.Writer, log *logger.ConsoleLogger) *Doctor {
	if log == nil {
		log = logger.NewConsoleLogger(nil, "")
	}
	return &Doctor{
		ProjectDir: projectDir,
		Config:     cfg,
		Runner:     runner,
		Report:     rep,
		Log:        log,
	}
}

// Run executes all checks in order and writes the full report.
// Check failures (missing files, malformed JSON, absent tools) are recovered
// inside each check as report lines; Run itself never fails.
func (d *Doctor) Run(ctx context.Context) {
	d.Report.Banner("🔍 TypeScript Project Diagnostic Report")

	d.CheckVersions(ctx)
	d.CheckTSConfig()
	d.CheckTooling()
	d.CheckMonorepo()
	d.CheckAnyUsage(ctx)
	d.CheckTypeAssertions(ctx)
	d.CheckTypeErrors(ctx)
	d.CheckPerformance(ctx)

	d.Report.Raw("")
	d.Report.Banner("✅ Diagnostic Complete")
}

// run executes one external command with debug logging around it.
// extra arguments are appended to the configured argument vector.
func (d *Doctor) run(ctx context.Context, mergeStderr bool, argv []string, extra ...string) command.Result {
	args := append(append([]string{}, argv...), extra...)

	d.Log.LogDebug(fmt.Sprintf("running: %s", strings.Join(args, " ")))
	start := time.Now()
	res := d.Runner.Run(ctx, mergeStderr, args[0], args[1:]...)
	d.Log.LogDebug(fmt.Sprintf("%s finished in %s", args[0], time.Since(start).Round(time.Millisecond)))

	if res.Failed() {
		d.Log.LogWarn(fmt.Sprintf("%s could not be executed: %v", args[0], res.Err))
	}
	return res
}
