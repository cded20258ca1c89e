package diagnose

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/tsdoctor/internal/command"
)

const tscCheckKey = "npx tsc --noEmit"

func TestCheckTypeErrors_CountsErrorsInWindow(t *testing.T) {
	output := strings.Join([]string{
		"src/a.ts(3,5): error TS2322: Type 'string' is not assignable to type 'number'.",
		"src/b.ts(7,1): error TS2304: Cannot find name 'foo'.",
		"src/c.ts(9,2): error TS2554: Expected 1 arguments, but got 2.",
	}, "\n")
	runner := &fakeRunner{responses: map[string]command.Result{
		tscCheckKey: {Output: output},
	}}

	doctor, buf := newTestDoctor(t.TempDir(), runner)
	doctor.CheckTypeErrors(context.Background())

	out := buf.String()
	assert.Contains(t, out, "❌ 3+ type errors found")
	assert.Contains(t, out, "error TS2322")
}

func TestCheckTypeErrors_CleanOutput(t *testing.T) {
	doctor, buf := newTestDoctor(t.TempDir(), &fakeRunner{})

	doctor.CheckTypeErrors(context.Background())

	assert.Contains(t, buf.String(), "✅ No type errors")
}

func TestCheckTypeErrors_ErrorBeyondWindowIsMissed(t *testing.T) {
	// 24 lines of preamble, then an error on line 25. Inspection stops at
	// line 20, so the run reports clean. This window-only behavior is the
	// check's contract.
	var lines []string
	for i := 1; i <= 24; i++ {
		lines = append(lines, fmt.Sprintf("preamble line %d", i))
	}
	lines = append(lines, "src/late.ts(1,1): error TS2322: late failure")
	runner := &fakeRunner{responses: map[string]command.Result{
		tscCheckKey: {Output: strings.Join(lines, "\n")},
	}}

	doctor, buf := newTestDoctor(t.TempDir(), runner)
	doctor.CheckTypeErrors(context.Background())

	out := buf.String()
	assert.Contains(t, out, "✅ No type errors")
	assert.NotContains(t, out, "late failure")
}

func TestCheckTypeErrors_ErrorsInWindowCountedDespiteLaterOnes(t *testing.T) {
	// Three errors inside the window, one past it: only the window counts.
	var lines []string
	lines = append(lines,
		"src/a.ts(1,1): error TS2322: first",
		"src/b.ts(2,1): error TS2304: second",
		"src/c.ts(3,1): error TS2554: third",
	)
	for i := 4; i <= 24; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	lines = append(lines, "src/d.ts(25,1): error TS2345: fourth")
	runner := &fakeRunner{responses: map[string]command.Result{
		tscCheckKey: {Output: strings.Join(lines, "\n")},
	}}

	doctor, buf := newTestDoctor(t.TempDir(), runner)
	doctor.CheckTypeErrors(context.Background())

	assert.Contains(t, buf.String(), "❌ 3+ type errors found")
}

func TestCheckTypeErrors_SampleTruncatedTo500Bytes(t *testing.T) {
	long := strings.Repeat("x", 600)
	output := "src/a.ts(1,1): error TS2322: " + long
	runner := &fakeRunner{responses: map[string]command.Result{
		tscCheckKey: {Output: output},
	}}

	doctor, buf := newTestDoctor(t.TempDir(), runner)
	doctor.CheckTypeErrors(context.Background())

	out := buf.String()
	require.Contains(t, out, "❌ 1+ type errors found")
	// Sample is capped even though the line itself is longer.
	assert.NotContains(t, out, output)
	assert.Contains(t, out, output[:500])
}
