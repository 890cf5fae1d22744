package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/lazedo/yxa/config"
	"github.com/lazedo/yxa/internal/cron"
	hostaddrApi "github.com/lazedo/yxa/internal/hostaddr/api"
	hostaddrService "github.com/lazedo/yxa/internal/hostaddr/service"
	"github.com/lazedo/yxa/internal/version"
	"github.com/lazedo/yxa/pkg/format"
	"github.com/lazedo/yxa/pkg/logger"
	"github.com/lazedo/yxa/pkg/siphost"
)

func main() {
	log := logger.New()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic recovered: %v", r)
			os.Exit(1)
		}
	}()

	// Initialize configuration
	cfg := config.GetInstance()

	// Initialize services
	hostSvc := hostaddrService.New()

	// Initialize cron manager
	cronManager := cron.NewManager(log, hostSvc, cfg.Watch.Schedule)
	cronManager.Start()
	defer cronManager.Stop()

	// Initialize API handlers
	hostHandler := hostaddrApi.NewHostHandler(hostSvc, cfg.Watch.Interval)

	// Create REST API container
	container := restful.NewContainer()

	// Create WebService
	ws := new(restful.WebService)
	ws.Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Register routes
	hostaddrApi.RegisterRoutes(ws, hostHandler)

	container.Add(ws)

	// Log API endpoints
	endpoints := make([]format.APIEndpoint, 0, len(ws.Routes()))
	for _, route := range ws.Routes() {
		endpoints = append(endpoints, format.APIEndpoint{
			Method:      route.Method,
			Path:        route.Path,
			Description: route.Doc,
		})
	}
	format.LogAPIEndpoints(log, endpoints)

	// Add CORS filter
	cors := restful.CrossOriginResourceSharing{
		AllowedHeaders: []string{"Content-Type", "Accept"},
		AllowedMethods: []string{"GET"},
		AllowedDomains: []string{"*"},
	}
	container.Filter(cors.Filter)

	// Add request logging filter
	container.Filter(func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		// Print request line with query parameters
		url := req.Request.URL.Path
		if req.Request.URL.RawQuery != "" {
			url += "?" + req.Request.URL.RawQuery
		}
		log.Info("%s %s %s", req.Request.Method, url, req.Request.Proto)

		// Print headers in debug mode
		if log.IsDebugEnabled() && len(req.Request.Header) > 0 {
			headers := make([]string, 0, len(req.Request.Header))
			for name, values := range req.Request.Header {
				headers = append(headers, fmt.Sprintf("%s: %s", name, values[0]))
			}
			log.Debug("Headers: %s", strings.Join(headers, ", "))
		}

		// Process the request
		chain.ProcessFilter(req, resp)

		// Log response status
		log.Debug("Response status: %d", resp.StatusCode())
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting hostipd %s on %s", version.Version, addr)

	// Advertise the URLs the daemon itself resolves; bracketed IPv6
	// addresses drop straight into the URL
	if addrs, err := siphost.Addresses(); err != nil {
		log.Warn("Could not resolve accessible URLs: %v", err)
	} else {
		log.Info("Accessible URLs:")
		for _, a := range addrs {
			log.Info("  http://%s:%d", a, cfg.Server.Port)
		}
	}

	// Create a channel to receive OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	server := &http.Server{
		Addr:    addr,
		Handler: container,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	log.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited properly")
}
