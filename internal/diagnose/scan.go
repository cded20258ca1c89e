package diagnose

import (
	"context"
	"strings"
)

// maxSampleLines bounds how many matching lines the any-usage check prints.
const maxSampleLines = 5

// CheckAnyUsage searches the source tree for explicit ": any" annotations.
// When matches exist it reports the count and up to the first five matching
// lines verbatim, file:line prefixes included.
func (d *Doctor) CheckAnyUsage(ctx context.Context) {
	d.Report.Section("⚠️ 'any' Type Usage:")

	lines := d.searchSource(ctx, ": any")
	if len(lines) == 0 {
		d.Report.Passf("No explicit 'any' types found")
		return
	}

	d.Report.Warnf("Found %d occurrences of ': any'", len(lines))
	sample := lines
	if len(sample) > maxSampleLines {
		sample = sample[:maxSampleLines]
	}
	d.Report.Raw(strings.Join(sample, "\n"))
}

// CheckTypeAssertions searches the source tree for " as " type assertions,
// excluding lines that contain "import" (assertion-like syntax inside import
// statements — a heuristic, not a parser). Only the count is reported.
func (d *Doctor) CheckTypeAssertions(ctx context.Context) {
	d.Report.Section("⚠️ Type Assertions (as):")

	var filtered []string
	for _, line := range d.searchSource(ctx, " as ") {
		if !strings.Contains(line, "import") {
			filtered = append(filtered, line)
		}
	}

	if len(filtered) == 0 {
		d.Report.Passf("No type assertions found")
		return
	}
	d.Report.Warnf("Found %d type assertions", len(filtered))
}

// searchSource greps the configured source directory recursively for a
// literal pattern in .ts and .tsx files, returning the non-empty matching
// lines. An absent source directory yields no matches. A grep that could
// not be executed surfaces its error text as ordinary match lines.
func (d *Doctor) searchSource(ctx context.Context, pattern string) []string {
	res := d.run(ctx, false, d.Config.GrepCommand,
		"-r",
		pattern,
		"--include=*.ts",
		"--include=*.tsx",
		d.Config.SourceDir+"/",
	)

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
