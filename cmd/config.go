package cmd

import (
	"fmt"
	"io"

	"github.com/grovetools/mantra/config"
	"github.com/grovetools/mantra/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the command that prints the configuration layers and
// the merged result.
func NewConfigCmd(env *Env) *cobra.Command {
	var schemaOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the layered configuration for the current directory",
		Long: `Shows how the effective configuration is built by merging layers:
1. Global config (~/.config/mantra/mantra.yml)
2. Project config (.claude/mantra.yml)
3. Override file (.claude/mantra.override.yml)
4. MANTRA_* environment overrides`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if schemaOnly {
				data, err := config.GenerateSchema()
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			root, err := env.root()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to resolve working directory")
			}

			layered, err := config.LoadLayered(root)
			if err != nil {
				return err
			}

			layers := []struct {
				title  string
				source config.ConfigSource
				cfg    *config.Config
			}{
				{"GLOBAL", config.SourceGlobal, layered.Global},
				{"PROJECT", config.SourceProject, layered.Project},
				{"OVERRIDE", config.SourceOverride, layered.Override},
			}
			for _, layer := range layers {
				if layer.cfg == nil {
					continue
				}
				if err := printLayer(out, layer.title, layered.FilePaths[layer.source], layer.cfg); err != nil {
					return err
				}
			}
			return printLayer(out, "EFFECTIVE", "", layered.Final)
		},
	}

	cmd.Flags().BoolVar(&schemaOnly, "schema", false, "Print the configuration JSON schema instead")
	return cmd
}

func printLayer(w io.Writer, title, path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal %s config: %w", title, err)
	}
	fmt.Fprintf(w, "--- # %s\n", title)
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	fmt.Fprint(w, string(data))
	return nil
}
