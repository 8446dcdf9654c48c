package combine

import "errors"

// Failure conditions surfaced by the combine pipeline. Callers match them with errors.Is.
var (
	// ErrDirectoryNotFound is returned when the project root is missing or is not a directory.
	ErrDirectoryNotFound = errors.New("project directory does not exist")

	// ErrUnreadableFile marks a single file that could not be read during assembly.
	// It is logged, never returned: the file's section gets UnreadablePlaceholder instead.
	ErrUnreadableFile = errors.New("file not found or cannot be read")

	// ErrWriteFailure is returned when the assembled document cannot be written.
	ErrWriteFailure = errors.New("failed to write to output file")

	// ErrTreeWriteFailure is returned when the optional tree view cannot be written.
	// The bundle itself was written.
	ErrTreeWriteFailure = errors.New("failed to write tree file")
)
