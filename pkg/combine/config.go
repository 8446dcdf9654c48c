// File: pkg/combine/config.go
package combine

import "time"

// Defaults applied by Run when the corresponding Arguments field is empty.
const (
	DefaultOutput = "project_bundle.txt"
	DefaultTitle  = "Project Converted to Single File"
)

// Arguments holds the configuration options for one combine run.
type Arguments struct {
	ProjectDir string           // Root directory to scan.
	Output     string           // Destination path for the combined document.
	Tree       string           // Optional destination for a tree view of the bundled files.
	Title      string           // First line of the document header.
	Exclusions Exclusions       // Directory, extension and filename exclusion sets.
	Now        func() time.Time // Clock for the header timestamp; time.Now when nil.
}

// Document is an assembled bundle held in memory before it is written.
type Document struct {
	Content    []byte   // Header block followed by one section per file.
	Files      []string // Relative paths in section order.
	Unreadable []string // Relative paths whose section holds UnreadablePlaceholder.
}

// FileCount returns the number of sections in the document.
func (d Document) FileCount() int {
	return len(d.Files)
}

// Result summarizes a completed run.
type Result struct {
	RunID      string        // Unique identifier attached to the run's log lines.
	Output     string        // Path the document was written to.
	Tree       string        // Path the tree view was written to, if requested.
	FileCount  int           // Number of files in the document.
	Unreadable int           // Files replaced by the placeholder.
	Bytes      int           // Size of the written document.
	Elapsed    time.Duration // Wall time of the run.
}
