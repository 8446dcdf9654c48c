package combine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts combine runs.
	// Labels: outcome (success, directory_not_found, write_failure, tree_write_failure, error)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "projectpack",
			Subsystem: "combine",
			Name:      "runs_total",
			Help:      "Total number of combine runs by outcome",
		},
		[]string{"outcome"},
	)

	// FilesBundledTotal counts sections written into documents.
	FilesBundledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "projectpack",
			Subsystem: "combine",
			Name:      "files_bundled_total",
			Help:      "Total number of files written into combined documents",
		},
	)

	// UnreadableFilesTotal counts sections that received the placeholder.
	UnreadableFilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "projectpack",
			Subsystem: "combine",
			Name:      "unreadable_files_total",
			Help:      "Total number of files replaced by the unreadable placeholder",
		},
	)

	// RunDuration tracks how long successful runs take.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "projectpack",
			Subsystem: "combine",
			Name:      "run_duration_seconds",
			Help:      "Duration of successful combine runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrDirectoryNotFound):
		return "directory_not_found"
	case errors.Is(err, ErrWriteFailure):
		return "write_failure"
	case errors.Is(err, ErrTreeWriteFailure):
		return "tree_write_failure"
	default:
		return "error"
	}
}
