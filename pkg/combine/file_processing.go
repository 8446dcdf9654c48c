package combine

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// UnreadablePlaceholder stands in for the content of a file that could not be read.
const UnreadablePlaceholder = "// File not found or cannot be read\n"

// ReadContent returns the raw content of absolutePath and true. If the file cannot be
// read it logs the failure and returns UnreadablePlaceholder and false; the run goes on.
func ReadContent(absolutePath string, logger *zap.Logger) ([]byte, bool) {
	logger.Debug("Reading file content", zap.String("filePath", absolutePath))

	content, err := os.ReadFile(absolutePath)
	if err != nil {
		logger.Warn("Substituting placeholder for unreadable file",
			zap.String("filePath", absolutePath),
			zap.Error(fmt.Errorf("%w: %w", ErrUnreadableFile, err)))
		return []byte(UnreadablePlaceholder), false
	}

	if looksBinary(content) {
		logger.Warn("File content looks binary, including it verbatim", zap.String("filePath", absolutePath))
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", absolutePath),
		zap.Int("contentSizeBytes", len(content)))
	return content, true
}
