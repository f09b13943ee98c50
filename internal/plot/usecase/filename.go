package usecase

import (
	"path"
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // read-only
var allowedExtensions = map[string]struct{}{
	"xls":  {},
	"xlsx": {},
}

//nolint:gochecknoglobals // compiled once
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// AllowedFile reports whether filename ends in .xls or .xlsx, ignoring case.
// A name without a dot has no extension and is rejected.
func AllowedFile(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx == -1 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[idx+1:])]
	return ok
}

// SanitizeFilename strips directory components and characters outside
// [A-Za-z0-9_.-] so the name is safe to log. Spaces become underscores.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	filename = strings.Join(strings.Fields(filename), "_")
	filename = unsafeFilenameChars.ReplaceAllString(filename, "")
	filename = strings.Trim(filename, "._")

	if filename == "" {
		return "unnamed"
	}
	return filename
}
