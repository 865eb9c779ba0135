package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/podssh/cmd/podssh/handlers"
)

// Init returns the command for interactively creating the settings file.
//
// Flags:
//
//	--output, -o: Path to output file (default: user config dir)
//	--force, -f: Overwrite an existing file without asking
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create the podssh settings file",
		Long: `Interactively create the podssh settings file.

The wizard asks for:

  - Inventory provider (RunPod or Hetzner Cloud)
  - SSH user and identity file written into every host block
  - Directory and file name of the managed SSH config
  - Output file and key types for podssh keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")

	return cmd
}
