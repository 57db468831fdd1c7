package cli

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/mantra/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the standard version command. --json prints the
// build information as JSON.
func NewVersionCommand(componentName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version number of %s", componentName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			out := cmd.OutOrStdout()

			if GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", componentName, info.Short())
			fmt.Fprintf(out, "  Built:    %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Platform: %s\n", info.Platform)
			return nil
		},
	}
}
