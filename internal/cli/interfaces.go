package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazedo/yxa/internal/hostaddr/service"
	"github.com/lazedo/yxa/pkg/format"
	model "github.com/lazedo/yxa/pkg/hostaddr"
)

// InterfacesOptions holds command options
type InterfacesOptions struct {
	OutputFormat string
	Remote       string
}

// NewInterfacesCommand creates a new interfaces command
func NewInterfacesCommand() *cobra.Command {
	opts := &InterfacesOptions{}

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Print the interface table with filter verdicts",
		Long: `Print every network interface the platform reports, its flags, its
address and whether the address qualifies as a contact address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterfaces(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.OutputFormat, "output", "text", "Output format (text, json or yaml)")
	flags.StringVar(&opts.Remote, "remote", "", "Endpoint of a running hostipd to query instead of resolving locally")

	registerOutputCompletion(cmd)

	return cmd
}

// runInterfaces executes the interfaces command logic
func runInterfaces(opts *InterfacesOptions) error {
	var ifaces []model.Interface
	if opts.Remote != "" {
		if err := fetchJSON(opts.Remote, "/interfaces", &ifaces); err != nil {
			return err
		}
	} else {
		var err error
		ifaces, err = service.New().Interfaces()
		if err != nil {
			return fmt.Errorf("list interfaces: %v", err)
		}
	}

	return renderOutput(opts.OutputFormat, ifaces, func() {
		if len(ifaces) == 0 {
			fmt.Println("No interfaces found")
			return
		}

		// Print header
		fmt.Printf("%-16s %-40s %-28s %s\n", "NAME", "ADDRESS", "FLAGS", "VERDICT")

		for _, ifc := range ifaces {
			addr := ifc.Address
			if addr == "" {
				addr = "-"
			}
			fmt.Printf("%-16s %-40s %-28s %s\n", ifc.Name, addr, ifc.Flags, format.FormatUsable(ifc.Usable))
		}
	})
}
