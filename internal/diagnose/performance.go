package diagnose

import (
	"context"
	"regexp"
	"strings"
)

// diagnosticsLine matches the extended-diagnostics counters worth surfacing:
// check time plus file, line, and node counts.
var diagnosticsLine = regexp.MustCompile(`Check time|Files:|Lines:|Nodes:`)

// CheckPerformance runs the compiler with extended diagnostics and reports
// the timing and size counters verbatim, in output order.
func (d *Doctor) CheckPerformance(ctx context.Context) {
	d.Report.Section("⏱️ Type Check Performance:")

	res := d.run(ctx, true, d.Config.TscCommand, "--extendedDiagnostics", "--noEmit")

	matched := false
	for _, line := range strings.Split(res.Text(), "\n") {
		if diagnosticsLine.MatchString(line) {
			d.Report.Linef("%s", line)
			matched = true
		}
	}

	if !matched {
		d.Report.Warnf("Could not measure performance")
	}
}
