// Package resolve implements PATH-based executable lookup: a non-mutating
// iterator over colon-separated PATH segments, probed on demand.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// Lookup classifies a bare command word (no builtin awareness — that is the
// caller's concern) as an external executable.
//
// If name contains a path separator it is tested literally. Otherwise each
// directory in $PATH is probed in order and the first existent, executable
// match wins. Lookup never caches: every call re-reads $PATH and re-stats
// the filesystem, so environment and filesystem changes take effect
// immediately.
func Lookup(name string) (path string, ok bool) {
	if strings.Contains(name, "/") {
		if isExecutableFile(name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range strings.Split(os.Getenv("PATH"), ":") {
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

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
