package diagnose

import (
	"path/filepath"

	"github.com/harrison/tsdoctor/internal/project"
)

// trackedFlags are the compiler options the analyzer reports on, in display
// order.
var trackedFlags = []struct {
	key  string
	desc string
}{
	{"noUncheckedIndexedAccess", "Unchecked index access protection"},
	{"noImplicitOverride", "Implicit override protection"},
	{"skipLibCheck", "Skip lib check (performance)"},
	{"incremental", "Incremental compilation"},
}

// CheckTSConfig analyzes tsconfig.json: strict mode, the tracked safety and
// performance flags, and the module settings. This is a read-and-display
// pass only; no cross-option validation is performed.
func (d *Doctor) CheckTSConfig() {
	d.Report.Section("⚙️ TSConfig Analysis:")

	f := project.LoadJSON(filepath.Join(d.ProjectDir, "tsconfig.json"))
	switch f.State {
	case project.LoadNotFound:
		d.Report.Warnf("tsconfig.json not found")
		return
	case project.LoadMalformed:
		d.Report.Failf("Invalid JSON in tsconfig.json")
		return
	}

	opts := project.CompilerOptions(f.Data)

	if project.Truthy(opts["strict"]) {
		d.Report.Passf("Strict mode enabled")
	} else {
		d.Report.Warnf("Strict mode NOT enabled")
	}

	for _, flag := range trackedFlags {
		value := project.OptionValue(opts, flag.key)
		if project.Truthy(opts[flag.key]) {
			d.Report.Passf("%s: %s", flag.desc, value)
		} else {
			d.Report.Notef("%s: %s", flag.desc, value)
		}
	}

	d.Report.Raw("")
	d.Report.Linef("Module: %s", project.OptionValue(opts, "module"))
	d.Report.Linef("Module Resolution: %s", project.OptionValue(opts, "moduleResolution"))
	d.Report.Linef("Target: %s", project.OptionValue(opts, "target"))
}
