// Package path resolves executable names against the colon-separated PATH
// environment variable, the way the shell's "type" built-in and completion
// callback both need to.
package path

import (
	"os"
	"path/filepath"
	"strings"
)

const envVar = "PATH"

// Find looks up name on the search path. It returns the full path to the
// first matching regular, owner-executable file, or "" with ok=false if no
// entry matches or PATH is unset. Empty path entries and entries that are
// not directories are skipped silently.
func Find(name string) (string, bool) {
	for _, dir := range dirs() {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ListAll returns the basename of every regular, owner-executable file
// found across every directory on the search path, in path-entry order and
// then directory-listing order. Duplicates are preserved; callers that
// need unique names (e.g. completion) are expected to dedupe themselves.
func ListAll() []string {
	var names []string
	for _, dir := range dirs() {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if isExecutableFile(full) {
				names = append(names, entry.Name())
			}
		}
	}
	return names
}

func dirs() []string {
	path := os.Getenv(envVar)
	if path == "" {
		return nil
	}
	return strings.Split(path, string(os.PathListSeparator))
}

// isExecutableFile reports whether path is a regular file with the
// owner-execute permission bit set. A stat failure is treated as "not
// executable" rather than propagated.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0100 != 0
}
