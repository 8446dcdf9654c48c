// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
)

// Scan walks rootDir and returns the slash-separated relative paths of every file that
// passes ex. Excluded directories are pruned with their whole subtree.
//
// The walk uses an explicit work list rather than recursion. A symlink to a directory
// is treated as a directory: it is matched against ex and, when kept, followed unless
// its target is already on the current path. Symlinks to files and dangling symlinks
// are reported as files. The returned order is unspecified, callers sort.
func Scan(rootDir string, ex Exclusions, logger *zap.Logger) ([]string, error) {
	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		logger.Error("Project directory does not exist", zap.String("directory", rootDir), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, rootDir)
	}

	logger.Debug("Starting file traversal and collection", zap.String("parentDir", rootDir))

	var files []string
	pending := []scanDir{{rel: "", ancestors: []string{realDir(rootDir)}}}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		dirPath := filepath.Join(rootDir, filepath.FromSlash(current.rel))
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			if current.rel == "" {
				logger.Error("Failed to read project directory", zap.String("directory", dirPath), zap.Error(err))
				return nil, fmt.Errorf("failed to read directory '%s': %w", dirPath, err)
			}
			logger.Warn("Error accessing directory during traversal", zap.String("directory", dirPath), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if name == "." || name == ".." {
				continue
			}

			relPath := joinRelative(current.rel, name)
			entryPath := filepath.Join(dirPath, name)

			isDir := entry.IsDir()
			resolved := ""
			if isDir {
				resolved = filepath.Join(current.resolved(), name)
			} else if entry.Type()&fs.ModeSymlink != 0 {
				if target, err := os.Stat(entryPath); err == nil && target.IsDir() {
					isDir = true
					resolved = realDir(entryPath)
				}
			}

			if isDir {
				if ex.ExcludesDir(relPath) {
					logger.Debug("Skipping excluded directory during traversal", zap.String("directory", relPath))
					continue
				}
				if slices.Contains(current.ancestors, resolved) {
					logger.Warn("Skipping symlinked directory that loops back to an ancestor",
						zap.String("directory", relPath), zap.String("target", resolved))
					continue
				}
				pending = append(pending, scanDir{
					rel:       relPath,
					ancestors: append(slices.Clone(current.ancestors), resolved),
				})
				continue
			}

			if ex.ExcludesFile(name) {
				logger.Debug("Skipping excluded file during traversal", zap.String("filePath", relPath))
				continue
			}

			files = append(files, relPath)
		}
	}

	logger.Debug("Completed file traversal and collection", zap.Int("regularFiles", len(files)))
	return files, nil
}

// scanDir is a directory waiting to be listed.
type scanDir struct {
	rel       string   // Slash-separated path relative to the root; "" is the root.
	ancestors []string // Resolved paths from the root down to and including this directory.
}

// resolved returns the resolved path of the directory itself.
func (d scanDir) resolved() string {
	return d.ancestors[len(d.ancestors)-1]
}

// realDir resolves every symlink in path, falling back to the absolute path.
func realDir(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if abs, err := filepath.Abs(resolved); err == nil {
			return abs
		}
		return resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// joinRelative joins a slash-separated relative directory and an entry name.
func joinRelative(relDir, name string) string {
	if relDir == "" {
		return name
	}
	return relDir + "/" + name
}
