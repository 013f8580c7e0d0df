package fixturego

import "bytes"

// Common constants for fixture file operations
const (
	maxFixtureSize = 1 * 1024 * 1024 // 1MB; corpus programs are tiny by design
)

// isAllowedExtension checks if the file extension is allowed for fixtures
func isAllowedExtension(ext string) bool {
	allowedExts := map[string]bool{
		".go": true,
	}
	return allowedExts[ext]
}

// isGeneratedFile reports whether the source carries the conventional
// "Code generated ... DO NOT EDIT." marker. Generated files make poor
// fixtures because their content shifts under the generator's hands.
func isGeneratedFile(content []byte) bool {
	for _, line := range bytes.Split(content, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if !bytes.HasPrefix(trimmed, []byte("//")) {
			// Markers are only honored before the first non-comment line
			return false
		}
		if bytes.HasPrefix(trimmed, []byte("// Code generated ")) &&
			bytes.HasSuffix(trimmed, []byte("DO NOT EDIT.")) {
			return true
		}
	}
	return false
}
