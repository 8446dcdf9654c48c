package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projectpack/pkg/combine"
	"projectpack/pkg/config"
	"projectpack/pkg/logging"
	"projectpack/pkg/version"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath   string
	debug        bool
	excludeDirs  []string
	excludeExts  []string
	excludeFiles []string

	cfg    *config.Config
	logger *zap.Logger
}

// reportedError marks an error whose message was already printed for the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRootCommand creates the root command. Invoked with a project directory it converts
// the project into a single file; subcommands provide the form server, the effective
// configuration and version information. A non-nil logger is used as is instead of
// building one from the flags.
func NewRootCommand(stdout, stderr io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logger}

	cmd := &cobra.Command{
		Use:   "projectpack <projectDirectory> [outputFile]",
		Short: "Projectpack bundles a project directory into a single text file",
		Long: `Projectpack recursively walks a project directory, skips excluded directories,
extensions and filenames, and concatenates every remaining file into one document
with a header block and a marker line before each file.

Examples:
  projectpack /path/to/project
  projectpack /path/to/project bundle.txt --tree tree.txt
  projectpack serve --port 8080`,
		Version:       version.Get().Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (env "+config.EnvConfigPath+")")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringSliceVar(&a.excludeDirs, "exclude-dir", nil, "additional directory substring to exclude (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&a.excludeExts, "exclude-ext", nil, "additional file extension to exclude (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&a.excludeFiles, "exclude-file", nil, "additional exact filename to exclude (repeatable)")

	addCombineFlags(cmd, a)

	cmd.AddCommand(newServeCommand(a))
	cmd.AddCommand(newConfigCommand(a))
	cmd.AddCommand(newVersionCommand(a))

	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(config.ResolvePath(a.configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(a.debug || cfg.Log.Debug, version.AppName, version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	return nil
}

// exclusions merges the configured sets with the --exclude-* flags.
func (a *app) exclusions() combine.Exclusions {
	return a.cfg.Exclusions().With(a.excludeDirs, a.excludeExts, a.excludeFiles)
}

// Execute runs the root command against os.Args and returns the process exit code
// together with the logger the run used, so the caller can flush it.
func Execute() (int, *zap.Logger) {
	cmd := NewRootCommand(os.Stdout, os.Stderr, nil)
	code := run(cmd, os.Stderr)

	// logging.New installs the logger it builds as zap's global.
	return code, zap.L()
}

// run executes cmd and prints errors that were not already reported.
func run(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
