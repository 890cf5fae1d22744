package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/lazedo/yxa/config"
	"github.com/lazedo/yxa/pkg/format"
	model "github.com/lazedo/yxa/pkg/hostaddr"
)

// WatchOptions holds command options
type WatchOptions struct {
	Endpoint     string
	OutputFormat string
	Count        int
}

// NewWatchCommand creates a new watch command
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream address snapshots from a hostipd daemon",
		Long: `Connect to a daemon's watch WebSocket and print each pushed snapshot.
The daemon re-resolves the addresses for every push.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Endpoint == "" {
				opts.Endpoint = config.GetClientEndpoint()
			}
			return runWatch(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Endpoint, "endpoint", "", "Daemon endpoint (default from config client.endpoint / API_ENDPOINT)")
	flags.StringVar(&opts.OutputFormat, "output", "text", "Output format (text or json, one snapshot per line)")
	flags.IntVarP(&opts.Count, "count", "c", 0, "Exit after this many snapshots (0 streams forever)")

	cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runWatch executes the watch command logic
func runWatch(opts *WatchOptions) error {
	wsURL, err := watchURL(opts.Endpoint)
	if err != nil {
		return err
	}

	if os.Getenv("DEBUG") == "true" {
		fmt.Fprintf(os.Stderr, "Watch URL: %s\n", wsURL)
	}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("connect %s: %v", wsURL, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Ctrl-C ends the stream cleanly
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	interrupted := make(chan struct{})
	go func() {
		<-interrupt
		close(interrupted)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for n := 0; opts.Count == 0 || n < opts.Count; n++ {
		var snap model.Snapshot
		if err := conn.ReadJSON(&snap); err != nil {
			select {
			case <-interrupted:
				return nil
			default:
				return fmt.Errorf("stream closed: %v", err)
			}
		}
		if err := printSnapshot(opts.OutputFormat, &snap); err != nil {
			return err
		}
	}

	return nil
}

// printSnapshot prints one pushed snapshot
func printSnapshot(outputFormat string, snap *model.Snapshot) error {
	switch outputFormat {
	case "json":
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to format as JSON: %v", err)
		}
		fmt.Println(string(data))
	case "text":
		fmt.Printf("%s  %s  (all: %s)\n",
			snap.TakenAt.Format(time.RFC3339),
			format.FormatAddress(snap.Address),
			strings.Join(snap.Addresses, ", "))
	default:
		return fmt.Errorf("invalid output format %q (must be text or json)", outputFormat)
	}
	return nil
}
