package combine

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	headerTimeLayout    = "2006-01-02 15:04:05"
	sectionMarkerPrefix = "/* ===== FILE: "
	sectionMarkerSuffix = " ===== */"
)

// SectionMarker returns the marker line, without newline, that introduces relPath's content.
func SectionMarker(relPath string) string {
	return sectionMarkerPrefix + relPath + sectionMarkerSuffix
}

// Assembler builds the single output document from a list of relative paths.
type Assembler struct {
	Title  string
	Now    func() time.Time
	Logger *zap.Logger
}

// NewAssembler returns an Assembler using the wall clock. An empty title falls back to DefaultTitle.
func NewAssembler(title string, logger *zap.Logger) *Assembler {
	if title == "" {
		title = DefaultTitle
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{Title: title, Now: time.Now, Logger: logger}
}

// Assemble sorts paths and concatenates the files under rootDir into one document:
// a header block, then for each path a marker line, the raw content and a blank line.
// Unreadable files get UnreadablePlaceholder and do not stop the assembly.
func (a *Assembler) Assemble(rootDir string, paths []string) Document {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	var buf bytes.Buffer
	buf.WriteString("/*\n")
	fmt.Fprintf(&buf, " * %s\n", a.Title)
	fmt.Fprintf(&buf, " * Generated on: %s\n", now().Format(headerTimeLayout))
	fmt.Fprintf(&buf, " * Project: %s\n", projectName(rootDir))
	fmt.Fprintf(&buf, " * Total Files: %d\n", len(sorted))
	buf.WriteString(" */\n\n")

	doc := Document{Files: sorted}
	for _, relPath := range sorted {
		content, ok := ReadContent(filepath.Join(rootDir, filepath.FromSlash(relPath)), a.Logger)
		if !ok {
			doc.Unreadable = append(doc.Unreadable, relPath)
		}

		buf.WriteString(SectionMarker(relPath))
		buf.WriteByte('\n')
		buf.Write(content)
		buf.WriteString("\n\n")
	}

	doc.Content = buf.Bytes()
	a.Logger.Debug("Assembled document",
		zap.Int("totalFiles", doc.FileCount()),
		zap.Int("unreadableFiles", len(doc.Unreadable)),
		zap.Int("sizeBytes", len(doc.Content)))
	return doc
}

// projectName is the base name of rootDir, resolved to an absolute path so "." and
// "./" still name the directory.
func projectName(rootDir string) string {
	if abs, err := filepath.Abs(rootDir); err == nil {
		rootDir = abs
	}
	return filepath.Base(rootDir)
}
