package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/podssh/cmd/podssh/handlers"
	"github.com/imamik/podssh/internal/config"
)

// Keys returns the command that extracts public keys from a text file.
func Keys() *cobra.Command {
	return newKeysCommand("keys <input>")
}

// ParseKeys returns the root command of the standalone parse-keys tool.
func ParseKeys() *cobra.Command {
	cmd := newKeysCommand("parse-keys <input>")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Version = version
	return cmd
}

// newKeysCommand builds the keys command surface shared by podssh and
// parse-keys.
//
// Flags:
//
//	--output, -o: Output file (default "authorized_keys.new")
//	--append, -a: Also append the raw input to the output file
//	--strict: Drop lines that are not valid public keys
//	--config, -c: Path to the settings file
func newKeysCommand(use string) *cobra.Command {
	var opts handlers.KeysOptions

	cmd := &cobra.Command{
		Use:   use,
		Short: "Extract SSH public keys from a text file",
		Long: `Extract SSH public keys from arbitrary text, such as a pod log.

Lines of the form "<type> <key> <user@host>" are collected in order of
first appearance, duplicates removed, printed and written one per line to
the output file, replacing its content.

With --append the entire input is appended to the output file afterwards,
unparsed. This can re-add duplicates and non-key lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputPath = args[0]
			if !cmd.Flags().Changed("output") {
				opts.OutputPath = ""
			}
			return handlers.Keys(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", config.DefaultKeysOutputFile, "Output file")
	cmd.Flags().BoolVarP(&opts.Append, "append", "a", false, "Append the raw input to the output file")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Only keep lines that parse as public keys")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to settings file")

	return cmd
}
