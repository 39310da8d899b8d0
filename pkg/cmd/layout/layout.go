package layout

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/lapcompare/pkg/config"
)

func NewLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "prints the effective layout as yaml",
		Long: `Prints the default layout merged with the file given by --layout.
The output may be used as a starting point for a custom layout file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := config.LoadLayout(config.LayoutFile)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(l); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&config.LayoutFile,
		"layout",
		"",
		"yaml file with layout overrides")
	return cmd
}
