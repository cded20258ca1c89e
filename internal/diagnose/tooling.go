package diagnose

import (
	"path/filepath"
	"strings"

	"github.com/harrison/tsdoctor/internal/project"
)

// knownTools maps dependency-name fragments to their report labels, in
// display order. More specific fragments come before their prefixes
// (turborepo before turbo) so each tool is reported under its best label.
var knownTools = []struct {
	fragment string
	label    string
}{
	{"biome", "Biome (linter/formatter)"},
	{"eslint", "ESLint"},
	{"prettier", "Prettier"},
	{"vitest", "Vitest (testing)"},
	{"jest", "Jest (testing)"},
	{"turborepo", "Turborepo (monorepo)"},
	{"turbo", "Turbo (monorepo)"},
	{"nx", "Nx (monorepo)"},
	{"lerna", "Lerna (monorepo)"},
}

// CheckTooling detects the project's TypeScript tooling ecosystem from
// package.json. Each known tool is reported at most once, on the first
// dependency name containing its fragment (case-insensitive); tools with no
// match produce no output.
func (d *Doctor) CheckTooling() {
	d.Report.Section("🛠️ Tooling Detection:")

	f := project.LoadJSON(filepath.Join(d.ProjectDir, "package.json"))
	switch f.State {
	case project.LoadNotFound:
		d.Report.Warnf("package.json not found")
		return
	case project.LoadMalformed:
		d.Report.Failf("Invalid JSON in package.json")
		return
	}

	deps := project.MergedDependencies(f.Data)

	for _, tool := range knownTools {
		for name := range deps {
			if strings.Contains(strings.ToLower(name), tool.fragment) {
				d.Report.Passf("%s", tool.label)
				break
			}
		}
	}
}
