package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazedo/yxa/pkg/format"
	model "github.com/lazedo/yxa/pkg/hostaddr"
	"github.com/lazedo/yxa/pkg/siphost"
)

// AddrOptions holds command options
type AddrOptions struct {
	OutputFormat string
	Remote       string
}

// NewAddrCommand creates a new addr command
func NewAddrCommand() *cobra.Command {
	opts := &AddrOptions{}

	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Print one contact address of the host",
		Long: `Print the address of the first usable network interface, or 127.0.0.1
when no interface qualifies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddr(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.OutputFormat, "output", "text", "Output format (text, json or yaml)")
	flags.StringVar(&opts.Remote, "remote", "", "Endpoint of a running hostipd to query instead of resolving locally")

	registerOutputCompletion(cmd)

	return cmd
}

// runAddr executes the addr command logic
func runAddr(opts *AddrOptions) error {
	var addr model.Address
	if opts.Remote != "" {
		if err := fetchJSON(opts.Remote, "/address", &addr); err != nil {
			return err
		}
	} else {
		a, err := siphost.Address()
		if err != nil {
			return fmt.Errorf("resolve address: %v", err)
		}
		addr = model.Address{Address: a}
	}

	return renderOutput(opts.OutputFormat, addr, func() {
		fmt.Println(format.FormatAddress(addr.Address))
	})
}
