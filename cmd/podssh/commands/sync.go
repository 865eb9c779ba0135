package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/podssh/cmd/podssh/handlers"
)

// Sync returns the command that rewrites the managed SSH config from the
// provider inventory.
//
// Optional flags:
//
//	--config, -c: Path to the settings file (default: user config dir)
//	--provider, -p: Override the provider from the settings file
//	--dry-run: Print the config instead of writing it
//	--json: Output the report as JSON
//	--metrics-file: Write Prometheus textfile metrics
//	--env-file: Load environment variables from a .env file
func Sync() *cobra.Command {
	var opts handlers.SyncOptions

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the SSH config from your running instances",
		Long: `Regenerate the managed SSH config file from your running instances.

Every instance exposing container port 22 becomes one Host block. The
managed file is replaced as a whole on every run; instances that are gone
disappear from it. Instances that cannot be converted are listed in the
report and skipped.

Required environment:
  RUNPOD_API_KEY  for the runpod provider
  HCLOUD_TOKEN    for the hcloud provider

Examples:
  # Sync RunPod pods into ~/.ssh/config.d/runpod
  podssh sync

  # Preview without writing
  podssh sync --dry-run

  # Use Hetzner Cloud servers and export metrics
  podssh sync --provider hcloud --metrics-file /var/lib/node_exporter/podssh.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Verbosity = verbosity
			return handlers.Sync(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to settings file")
	cmd.Flags().StringVarP(&opts.Provider, "provider", "p", "", "Inventory provider (runpod or hcloud)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the generated config instead of writing it")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the report in JSON format")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Load environment variables from this file")

	return cmd
}
