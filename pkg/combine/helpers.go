// File: pkg/combine/helpers.go
package combine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// WriteCombinedFile writes data to outputPath in a single write. The data goes to a
// temporary file next to the target which is then renamed over it, so a failed write
// never leaves a partial document. Concurrent writers of the same path are serialized
// through an advisory lock kept in the OS temp directory.
func WriteCombinedFile(outputPath string, data []byte, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		logger.Error("Failed to resolve output path", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := ensureDirectory(dir, logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	lock := flock.New(lockPath(absPath))
	if err := lock.Lock(); err != nil {
		logger.Error("Failed to lock output file", zap.String("file", absPath), zap.Error(err))
		return fmt.Errorf("failed to acquire lock on %s: %w", absPath, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("Failed to release output lock", zap.String("file", absPath), zap.Error(err))
		}
	}()

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".tmp-*")
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", absPath), zap.Error(err))
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Remove the temp file unless it was renamed into place.
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		logger.Error("Failed to write content to combined file", zap.String("file", absPath), zap.Error(err))
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, absPath); err != nil {
		logger.Error("Failed to move combined file into place", zap.String("file", absPath), zap.Error(err))
		return fmt.Errorf("failed to rename temp file to %s: %w", absPath, err)
	}
	tempFile = nil

	return nil
}

// lockPath derives a lock file location for target that does not live beside it.
func lockPath(target string) string {
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(os.TempDir(), "projectpack-"+hex.EncodeToString(sum[:8])+".lock")
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
