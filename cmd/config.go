package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigCommand prints the effective configuration, including --exclude-* flags.
func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effective := *a.cfg
			ex := a.exclusions()
			effective.Exclude.Dirs = ex.Dirs()
			effective.Exclude.Extensions = ex.Extensions()
			effective.Exclude.Files = ex.Filenames()

			out, err := effective.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = a.stdout.Write(out)
			return err
		},
	}
}
