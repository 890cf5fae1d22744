package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	model "github.com/lazedo/yxa/pkg/hostaddr"
)

// fetchJSON GETs an API path from a hostipd endpoint and decodes the body
// into out.
func fetchJSON(endpoint, path string, out interface{}) error {
	reqURL := strings.TrimRight(endpoint, "/") + "/api/v1" + path

	if os.Getenv("DEBUG") == "true" {
		fmt.Fprintf(os.Stderr, "Request URL: %s\n", reqURL)
	}

	resp, err := http.Get(reqURL)
	if err != nil {
		return fmt.Errorf("request %s: %v", reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		var herr model.HostError
		if err := json.Unmarshal(body, &herr); err == nil && herr.Message != "" {
			return fmt.Errorf("daemon: %s (%s)", herr.Message, herr.Code)
		}
		return fmt.Errorf("daemon returned HTTP %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}

// watchURL turns a daemon endpoint into its watch WebSocket URL
func watchURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %v", endpoint, err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/watch"
	return u.String(), nil
}
