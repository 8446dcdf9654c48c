// File: pkg/combine/execute.go
package combine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run scans args.ProjectDir, assembles the surviving files into one document and writes
// it to args.Output. A missing project directory fails with ErrDirectoryNotFound before
// anything is written; a failed write fails with ErrWriteFailure and the document is dropped.
// A failed tree view write returns ErrTreeWriteFailure together with the Result of the
// bundle, which is already on disk.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if args.Output == "" {
		args.Output = DefaultOutput
	}

	startTime := time.Now()
	result := Result{RunID: uuid.NewString(), Output: args.Output}
	logger = logger.With(zap.String("runID", result.RunID))
	logger.Info("Starting combination process",
		zap.String("directory", args.ProjectDir),
		zap.String("output", args.Output))

	err := run(args, &result, logger)
	RunsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	if err != nil && !errors.Is(err, ErrTreeWriteFailure) {
		return result, err
	}

	result.Elapsed = time.Since(startTime)
	RunDuration.Observe(result.Elapsed.Seconds())
	FilesBundledTotal.Add(float64(result.FileCount))
	UnreadableFilesTotal.Add(float64(result.Unreadable))

	logger.Info("Successfully combined files",
		zap.String("outputFile", result.Output),
		zap.Int("totalFiles", result.FileCount),
		zap.Int("unreadableFiles", result.Unreadable),
		zap.Duration("elapsed", result.Elapsed))
	return result, err
}

func run(args Arguments, result *Result, logger *zap.Logger) error {
	files, err := Scan(args.ProjectDir, args.Exclusions, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to process after filtering.")
	}

	assembler := NewAssembler(args.Title, logger)
	if args.Now != nil {
		assembler.Now = args.Now
	}
	doc := assembler.Assemble(args.ProjectDir, files)

	if err := WriteCombinedFile(args.Output, doc.Content, logger); err != nil {
		logger.Error("Failed to write combined file", zap.String("combinedFile", args.Output), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	result.FileCount = doc.FileCount()
	result.Unreadable = len(doc.Unreadable)
	result.Bytes = len(doc.Content)

	if args.Tree != "" {
		tree := GenerateTree(projectName(args.ProjectDir), doc.Files)
		if err := WriteCombinedFile(args.Tree, []byte(tree), logger); err != nil {
			logger.Warn("Failed to write tree view", zap.String("treeFile", args.Tree), zap.Error(err))
			return fmt.Errorf("%w: %w", ErrTreeWriteFailure, err)
		}
		result.Tree = args.Tree
	}

	return nil
}
