package diagnose

import (
	"fmt"
	"path/filepath"

	"github.com/harrison/tsdoctor/internal/project"
)

// monorepoMarkers are the marker files whose presence signals a monorepo,
// in display order.
var monorepoMarkers = []struct {
	file  string
	label string
}{
	{"pnpm-workspace.yaml", "PNPM Workspace"},
	{"lerna.json", "Lerna"},
	{"nx.json", "Nx"},
	{"turbo.json", "Turborepo"},
}

// CheckMonorepo checks for monorepo configuration by marker file presence.
// Every marker found gets its own line; only when none are found does the
// check emit a single "not detected" line. For a pnpm workspace, the
// declared package globs are listed under the detection line.
func (d *Doctor) CheckMonorepo() {
	d.Report.Section("📦 Monorepo Check:")

	found := false
	for _, marker := range monorepoMarkers {
		path := filepath.Join(d.ProjectDir, marker.file)
		if !project.FileExists(path) {
			continue
		}

		d.Report.Passf("%s detected", marker.label)
		found = true

		if marker.file == "pnpm-workspace.yaml" {
			globs, err := project.LoadWorkspacePackages(path)
			if err != nil {
				// Still detected; the glob listing is best-effort.
				d.Log.LogWarn(fmt.Sprintf("could not read workspace packages: %v", err))
				continue
			}
			for _, glob := range globs {
				d.Report.Linef("   - %s", glob)
			}
		}
	}

	if !found {
		d.Report.Notef("No monorepo configuration detected")
	}
}
