package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"projectpack/pkg/combine"
)

// addCombineFlags wires the conversion itself onto the root command.
func addCombineFlags(cmd *cobra.Command, a *app) {
	var treePath, title string

	cmd.Flags().StringVar(&treePath, "tree", "", "also write a tree view of the bundled files to this path")
	cmd.Flags().StringVar(&title, "title", "", "title line of the document header")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		output := a.cfg.Output.Default
		if len(args) > 1 && args[1] != "" {
			output = args[1]
		}
		headerTitle := title
		if headerTitle == "" {
			headerTitle = a.cfg.Output.Title
		}

		return a.convert(combine.Arguments{
			ProjectDir: args[0],
			Output:     output,
			Tree:       treePath,
			Title:      headerTitle,
			Exclusions: a.exclusions(),
		})
	}
}

// convert runs the pipeline and prints the status lines.
func (a *app) convert(args combine.Arguments) error {
	fmt.Fprintln(a.stdout, "Converting project to single file...")

	result, err := combine.Run(args, a.logger)
	if err != nil && !errors.Is(err, combine.ErrTreeWriteFailure) {
		red := color.New(color.FgRed)
		switch {
		case errors.Is(err, combine.ErrDirectoryNotFound):
			red.Fprintln(a.stderr, "Error: Project directory does not exist.")
		case errors.Is(err, combine.ErrWriteFailure):
			red.Fprintln(a.stderr, "Error: Failed to write to output file.")
		default:
			red.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return &reportedError{err: err}
	}

	color.New(color.FgGreen).Fprintln(a.stdout, "Conversion completed successfully!")
	fmt.Fprintf(a.stdout, "Output file: %s\n", result.Output)
	fmt.Fprintf(a.stdout, "Total files processed: %d\n", result.FileCount)
	if result.Tree != "" {
		fmt.Fprintf(a.stdout, "Tree file: %s\n", result.Tree)
	}
	if result.Unreadable > 0 {
		color.New(color.FgYellow).Fprintf(a.stdout, "Note: %d file(s) could not be read and were replaced by a placeholder.\n", result.Unreadable)
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(a.stderr, "Error: Failed to write tree file %s.\n", args.Tree)
		return &reportedError{err: err}
	}
	return nil
}
