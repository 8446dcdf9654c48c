// File: pkg/combine/filter.go
package combine

import (
	"slices"
	"strings"
)

// Exclusions holds the three exclusion sets consulted during a scan.
// Build it with NewExclusions or DefaultExclusions; it is not modified afterwards.
type Exclusions struct {
	dirs       []string // Substrings that exclude a directory when found anywhere in its relative path.
	extensions []string // Lower-cased extensions without the leading dot.
	filenames  []string // Exact bare filenames.
}

// DefaultExclusions returns the built-in exclusion sets.
func DefaultExclusions() Exclusions {
	return NewExclusions(DefaultExcludedDirs, DefaultExcludedExtensions, DefaultExcludedFilenames)
}

// Built-in exclusion lists.
var (
	DefaultExcludedDirs = []string{
		"vendor",
		"node_modules",
		"storage/logs",
		"storage/framework/cache",
		"storage/framework/sessions",
		"storage/framework/views",
		".git",
		"public/storage",
	}

	DefaultExcludedExtensions = []string{
		"log", "zip", "gz", "rar",
		"jpg", "jpeg", "png", "gif", "bmp", "svg", "ico",
		"mp3", "mp4", "avi", "mov", "wmv",
		"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx",
	}

	DefaultExcludedFilenames = []string{
		"README.md",
		".env.example",
		".gitattributes",
		".gitignore",
	}
)

// NewExclusions copies and normalizes the given sets. Empty entries are dropped,
// extensions are lower-cased and lose any leading dot.
func NewExclusions(dirs, extensions, filenames []string) Exclusions {
	ex := Exclusions{
		dirs:       compact(dirs, func(s string) string { return s }),
		extensions: compact(extensions, normalizeExtension),
		filenames:  compact(filenames, func(s string) string { return s }),
	}
	return ex
}

// With returns a new Exclusions with the given entries appended to the current sets.
func (e Exclusions) With(dirs, extensions, filenames []string) Exclusions {
	return NewExclusions(
		append(slices.Clone(e.dirs), dirs...),
		append(slices.Clone(e.extensions), extensions...),
		append(slices.Clone(e.filenames), filenames...),
	)
}

// Dirs returns a copy of the excluded directory substrings.
func (e Exclusions) Dirs() []string { return slices.Clone(e.dirs) }

// Extensions returns a copy of the excluded extensions.
func (e Exclusions) Extensions() []string { return slices.Clone(e.extensions) }

// Filenames returns a copy of the excluded filenames.
func (e Exclusions) Filenames() []string { return slices.Clone(e.filenames) }

// ExcludesDir reports whether the directory at relativePath is pruned.
func (e Exclusions) ExcludesDir(relativePath string) bool {
	return DirectoryExcluded(relativePath, e.dirs)
}

// ExcludesFile reports whether the file with the given bare name is dropped.
func (e Exclusions) ExcludesFile(filename string) bool {
	return FileExcluded(filename, e.extensions, e.filenames)
}

// DirectoryExcluded reports whether relativePath contains any of excludedDirs as a
// literal substring. This is not a path-segment match: "vendor" also excludes
// "lib/my-vendor-lib".
func DirectoryExcluded(relativePath string, excludedDirs []string) bool {
	for _, dir := range excludedDirs {
		if dir != "" && strings.Contains(relativePath, dir) {
			return true
		}
	}
	return false
}

// FileExcluded reports whether filename is listed in excludedFilenames or its
// extension (text after the last dot, case-insensitive) is listed in excludedExtensions.
// A name without an extension is never excluded by extension.
func FileExcluded(filename string, excludedExtensions, excludedFilenames []string) bool {
	if slices.Contains(excludedFilenames, filename) {
		return true
	}

	ext := fileExtension(filename)
	if ext == "" {
		return false
	}
	for _, excluded := range excludedExtensions {
		if normalizeExtension(excluded) == ext {
			return true
		}
	}
	return false
}

// fileExtension returns the lower-cased text after the last dot, or "" if there is none.
func fileExtension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// compact applies norm to each entry and drops the empty results.
func compact(values []string, norm func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = norm(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
