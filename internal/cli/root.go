package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the hostip command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hostip",
		Short: "Query the host's contact addresses",
		Long: `hostip resolves the addresses this host can advertise to its peers,
either locally or through a running hostipd daemon.`,
		Example: `  hostip addr                                  # One contact address of this host
  hostip list --output json                    # All contact addresses as JSON
  hostip interfaces                            # Interface table with filter verdicts
  hostip addr --remote http://10.0.0.5:28060   # Ask a remote hostipd instead
  hostip watch                                 # Stream snapshots from a daemon`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewAddrCommand(),
		NewListCommand(),
		NewInterfacesCommand(),
		NewWatchCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
