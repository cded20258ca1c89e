package project

import "fmt"

// CompilerOptions extracts the nested compilerOptions mapping from a decoded
// tsconfig.json. Returns an empty map when the key is absent or not an
// object, so lookups degrade to "not set".
func CompilerOptions(tsconfig map[string]any) map[string]any {
	opts, ok := tsconfig["compilerOptions"].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return opts
}

// MergedDependencies merges the dependencies and devDependencies groups of a
// decoded package.json into one set of dependency names. Version strings are
// never parsed; only the keys matter to the tooling detector.
func MergedDependencies(pkg map[string]any) map[string]bool {
	merged := make(map[string]bool)
	for _, group := range []string{"dependencies", "devDependencies"} {
		deps, ok := pkg[group].(map[string]any)
		if !ok {
			continue
		}
		for name := range deps {
			merged[name] = true
		}
	}
	return merged
}

// Truthy reports whether a decoded JSON value is truthy in the loose sense
// the original flag checks use: false, nil, zero, empty string, and empty
// collections are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// OptionValue renders a compiler option for display, substituting the
// literal "not set" when the option is absent.
func OptionValue(opts map[string]any, key string) string {
	v, ok := opts[key]
	if !ok {
		return "not set"
	}
	return fmt.Sprintf("%v", v)
}
