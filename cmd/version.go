// File: cmd/version.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"projectpack/pkg/version"
)

// newVersionCommand displays the current version of projectpack.
// The --short flag prints only the version number.
func newVersionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of projectpack",
		Long:  `Display the current version information of the projectpack CLI tool.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(a.stdout, v.Version)
			} else {
				fmt.Fprintln(a.stdout, v.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return cmd
}
