package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompilerOptions(t *testing.T) {
	tsconfig := map[string]any{
		"compilerOptions": map[string]any{"strict": true, "target": "ES2022"},
	}

	opts := CompilerOptions(tsconfig)

	assert.Equal(t, true, opts["strict"])
	assert.Equal(t, "ES2022", opts["target"])
}

func TestCompilerOptions_AbsentOrWrongType(t *testing.T) {
	assert.Empty(t, CompilerOptions(map[string]any{}))
	assert.Empty(t, CompilerOptions(map[string]any{"compilerOptions": "oops"}))
}

func TestMergedDependencies(t *testing.T) {
	pkg := map[string]any{
		"dependencies": map[string]any{
			"react": "^18.0.0",
		},
		"devDependencies": map[string]any{
			"eslint":     "^9.0.0",
			"typescript": "~5.3.0",
		},
	}

	deps := MergedDependencies(pkg)

	assert.Len(t, deps, 3)
	assert.True(t, deps["react"])
	assert.True(t, deps["eslint"])
	assert.True(t, deps["typescript"])
}

func TestMergedDependencies_MissingGroups(t *testing.T) {
	assert.Empty(t, MergedDependencies(map[string]any{}))
	assert.Empty(t, MergedDependencies(map[string]any{"dependencies": []any{"not-a-map"}}))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"empty string", "", false},
		{"non-empty string", "es2022", true},
		{"zero", float64(0), false},
		{"non-zero", float64(2), true},
		{"empty array", []any{}, false},
		{"non-empty array", []any{"a"}, true},
		{"empty object", map[string]any{}, false},
		{"non-empty object", map[string]any{"k": "v"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.value))
		})
	}
}

func TestOptionValue(t *testing.T) {
	opts := map[string]any{
		"incremental":  true,
		"target":       "ES2022",
		"skipLibCheck": false,
	}

	assert.Equal(t, "true", OptionValue(opts, "incremental"))
	assert.Equal(t, "ES2022", OptionValue(opts, "target"))
	assert.Equal(t, "false", OptionValue(opts, "skipLibCheck"))
	assert.Equal(t, "not set", OptionValue(opts, "noImplicitOverride"))
}
