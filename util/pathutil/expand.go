package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand expands a leading "~" and environment variables in a configured
// path. Relative paths stay relative.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
