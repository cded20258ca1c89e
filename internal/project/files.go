// Package project reads the inspected project's configuration surface:
// tsconfig.json, package.json, and monorepo marker files.
package project

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadState classifies the outcome of loading a guarded project file.
type LoadState int

const (
	// LoadOK means the file was read and decoded successfully.
	LoadOK LoadState = iota
	// LoadNotFound means the file does not exist in the project root.
	LoadNotFound
	// LoadMalformed means the file exists but could not be decoded.
	LoadMalformed
)

// JSONFile is the tagged result of loading a JSON project file.
// Both guarded reads (tsconfig.json and package.json) share this shape so
// the checks handle the three outcomes uniformly.
type JSONFile struct {
	State LoadState
	Data  map[string]any
	Err   error
}

// LoadJSON reads and decodes a JSON file into a generic mapping.
// Missing and malformed files are reported through the State tag, never as
// a raised error: the checks recover both locally with a report line.
func LoadJSON(path string) JSONFile {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return JSONFile{State: LoadNotFound, Err: err}
		}
		// Unreadable for another reason (permissions etc.) is treated the
		// same as malformed content: the file is present but unusable.
		return JSONFile{State: LoadMalformed, Err: err}
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return JSONFile{State: LoadMalformed, Err: err}
	}

	return JSONFile{State: LoadOK, Data: decoded}
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// pnpmWorkspace models the subset of pnpm-workspace.yaml we report on.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// LoadWorkspacePackages reads the package globs declared in a
// pnpm-workspace.yaml file. Returns an error when the file cannot be read
// or decoded; callers treat that as "detected, globs unavailable".
func LoadWorkspacePackages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	return ws.Packages, nil
}
