package diagnose

import (
	"context"
	"strings"
)

const (
	// errorWindowLines is how many lines of compiler output are inspected.
	errorWindowLines = 20
	// errorSampleBytes bounds the sample of compiler output printed.
	errorSampleBytes = 500
)

// CheckTypeErrors runs the compiler in no-emit mode and reports type errors
// found in the first 20 lines of output. The count carries a trailing "+"
// because truncation makes it a lower bound. Errors that appear only after
// the truncation window are not reported; that window-only inspection is the
// documented contract of this check.
func (d *Doctor) CheckTypeErrors(ctx context.Context) {
	d.Report.Section("🔍 Type Check:")

	res := d.run(ctx, true, d.Config.TscCommand, "--noEmit")

	lines := strings.Split(res.Text(), "\n")
	if len(lines) > errorWindowLines {
		lines = lines[:errorWindowLines]
	}
	window := strings.Join(lines, "\n")

	if !strings.Contains(window, "error TS") {
		d.Report.Passf("No type errors")
		return
	}

	count := strings.Count(window, "error TS")
	d.Report.Failf("%d+ type errors found", count)

	sample := window
	if len(sample) > errorSampleBytes {
		sample = sample[:errorSampleBytes]
	}
	d.Report.Raw(sample)
}
