package format

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lazedo/yxa/pkg/logger"
)

// APIEndpoint represents an API endpoint
type APIEndpoint struct {
	Method      string
	Path        string
	Description string
}

// FormatHTTPMethod returns a colored and bold HTTP method string
func FormatHTTPMethod(method string) string {
	switch method {
	case "GET":
		return color.New(color.Bold, color.FgGreen).Sprint(method)
	case "POST":
		return color.New(color.Bold, color.FgYellow).Sprint(method)
	case "DELETE":
		return color.New(color.Bold, color.FgRed).Sprint(method)
	default:
		return color.New(color.Bold).Sprint(method)
	}
}

// FormatAddress returns a colored contact address, green for dotted decimal
// IPv4 and cyan for bracketed IPv6.
func FormatAddress(addr string) string {
	if strings.HasPrefix(addr, "[") {
		return color.New(color.FgCyan).Sprint(addr)
	}
	return color.New(color.FgGreen).Sprint(addr)
}

// FormatUsable returns a colored verdict marker for an interface.
func FormatUsable(usable bool) string {
	if usable {
		return color.New(color.FgGreen).Sprint("usable")
	}
	return color.New(color.FgRed).Sprint("unusable")
}

// LogAPIEndpoint logs an API endpoint with consistent formatting
func LogAPIEndpoint(logger *logger.Logger, endpoint APIEndpoint) {
	// Using tabs for alignment since ANSI color codes don't affect tab stops
	logger.Info("  %s\t\t%s\t\t%s",
		FormatHTTPMethod(endpoint.Method),
		endpoint.Path,
		endpoint.Description,
	)
}

// LogAPIEndpoints logs a header and a list of API endpoints
func LogAPIEndpoints(logger *logger.Logger, endpoints []APIEndpoint) {
	logger.Info("API endpoints:")
	for _, endpoint := range endpoints {
		LogAPIEndpoint(logger, endpoint)
	}
}
