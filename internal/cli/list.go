package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazedo/yxa/pkg/format"
	model "github.com/lazedo/yxa/pkg/hostaddr"
	"github.com/lazedo/yxa/pkg/siphost"
)

// ListOptions holds command options
type ListOptions struct {
	OutputFormat string
	Remote       string
}

// NewListCommand creates a new list command
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all contact addresses of the host",
		Long: `Print every usable interface address, deduplicated and sorted. When no
interface qualifies the list is exactly [127.0.0.1].`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.OutputFormat, "output", "text", "Output format (text, json or yaml)")
	flags.StringVar(&opts.Remote, "remote", "", "Endpoint of a running hostipd to query instead of resolving locally")

	registerOutputCompletion(cmd)

	return cmd
}

// runList executes the list command logic
func runList(opts *ListOptions) error {
	var list model.AddressList
	if opts.Remote != "" {
		if err := fetchJSON(opts.Remote, "/addresses", &list); err != nil {
			return err
		}
	} else {
		addrs, err := siphost.Addresses()
		if err != nil {
			return fmt.Errorf("resolve addresses: %v", err)
		}
		list = model.AddressList{Addresses: addrs}
	}

	return renderOutput(opts.OutputFormat, list, func() {
		for _, addr := range list.Addresses {
			fmt.Println(format.FormatAddress(addr))
		}
	})
}
