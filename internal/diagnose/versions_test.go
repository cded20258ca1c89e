package diagnose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/tsdoctor/internal/command"
)

func TestCheckVersions_ReportsTrimmedVersions(t *testing.T) {
	runner := &fakeRunner{responses: map[string]command.Result{
		"npx tsc --version": {Output: "Version 5.3.3\n"},
		"node -v":           {Output: "v20.11.0\n"},
	}}
	doctor, buf := newTestDoctor(t.TempDir(), runner)

	doctor.CheckVersions(context.Background())

	out := buf.String()
	assert.Contains(t, out, "  TypeScript: Version 5.3.3\n")
	assert.Contains(t, out, "  Node.js: v20.11.0\n")
}

func TestCheckVersions_EmptyOutputShowsNotFound(t *testing.T) {
	runner := &fakeRunner{responses: map[string]command.Result{
		"npx tsc --version": {Output: "   \n"},
	}}
	doctor, buf := newTestDoctor(t.TempDir(), runner)

	doctor.CheckVersions(context.Background())

	out := buf.String()
	assert.Contains(t, out, "  TypeScript: Not found\n")
	assert.Contains(t, out, "  Node.js: Not found\n")
}

func TestCheckVersions_ExecutionFailureSurfacesErrorText(t *testing.T) {
	runner := &fakeRunner{responses: map[string]command.Result{
		"npx tsc --version": {Err: errors.New(`exec: "npx": executable file not found in $PATH`)},
	}}
	doctor, buf := newTestDoctor(t.TempDir(), runner)

	doctor.CheckVersions(context.Background())

	// The stringified error stands in for version output.
	assert.Contains(t, buf.String(), `executable file not found`)
}
