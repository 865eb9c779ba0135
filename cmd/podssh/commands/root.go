// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// verbosity is shared by every subcommand through the persistent -v flag.
var verbosity int

// Root returns the root command for the podssh CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "podssh",
		Short:         "Keep ~/.ssh config in sync with your cloud instances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(Sync())
	cmd.AddCommand(Keys())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
