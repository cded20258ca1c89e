package diagnose

import (
	"context"
	"strings"
)

// CheckVersions reports the TypeScript compiler and Node.js runtime
// versions. Version strings are printed verbatim, never parsed.
func (d *Doctor) CheckVersions(ctx context.Context) {
	d.Report.Section("📦 Versions:")

	tsVersion := strings.TrimSpace(d.run(ctx, false, d.Config.TscCommand, "--version").Text())
	nodeVersion := strings.TrimSpace(d.run(ctx, false, d.Config.NodeCommand, "-v").Text())

	d.Report.Linef("TypeScript: %s", orNotFound(tsVersion))
	d.Report.Linef("Node.js: %s", orNotFound(nodeVersion))
}

// orNotFound substitutes the literal "Not found" for empty version text.
func orNotFound(version string) string {
	if version == "" {
		return "Not found"
	}
	return version
}
