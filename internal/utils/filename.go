package utils

import (
	"path"    // Base name extraction
	"strings" // String manipulation
)

// SecureFilename reduces an uploaded filename to a safe base name made of
// ASCII letters, digits, '.', '_' and '-'. It may return "".
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/") // Windows clients send full paths
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.Join(strings.Fields(name), "_") {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}
