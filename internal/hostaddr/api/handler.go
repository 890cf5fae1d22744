package api

import (
	"net/http"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lazedo/yxa/internal/hostaddr/service"
	model "github.com/lazedo/yxa/pkg/hostaddr"
	"github.com/lazedo/yxa/pkg/logger"
)

var log = logger.New()

// Configure the WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Watch clients connect from anywhere on the LAN
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HostHandler handles HTTP requests for host address operations
type HostHandler struct {
	service  *service.HostService
	interval time.Duration
}

// NewHostHandler creates a new HostHandler pushing watch snapshots every interval
func NewHostHandler(svc *service.HostService, interval time.Duration) *HostHandler {
	return &HostHandler{
		service:  svc,
		interval: interval,
	}
}

// GetAddress returns one contact address of the host
func (h *HostHandler) GetAddress(req *restful.Request, resp *restful.Response) {
	addr, err := h.service.Address()
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "EnumerationError", err.Error())
		return
	}
	resp.WriteEntity(addr)
}

// GetAddresses returns all contact addresses of the host
func (h *HostHandler) GetAddresses(req *restful.Request, resp *restful.Response) {
	addrs, err := h.service.Addresses()
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "EnumerationError", err.Error())
		return
	}
	resp.WriteEntity(addrs)
}

// GetInterfaces returns the interface table with filter verdicts
func (h *HostHandler) GetInterfaces(req *restful.Request, resp *restful.Response) {
	ifaces, err := h.service.Interfaces()
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "EnumerationError", err.Error())
		return
	}
	resp.WriteEntity(ifaces)
}

// GetVersion returns daemon version information
func (h *HostHandler) GetVersion(req *restful.Request, resp *restful.Response) {
	resp.WriteEntity(h.service.Version())
}

// WatchAddresses streams address snapshots over a WebSocket. One snapshot is
// sent on connect and another every interval, each freshly resolved.
func (h *HostHandler) WatchAddresses(req *restful.Request, resp *restful.Response) {
	wsConn, err := upgrader.Upgrade(resp.ResponseWriter, req.Request, nil)
	if err != nil {
		// Upgrade writes the error response itself
		log.Errorf("Watch: failed to upgrade connection: %v", err)
		return
	}
	defer wsConn.Close()

	watcherID := uuid.New().String()
	log.Infof("Watch [%s]: connected from %s", watcherID, req.Request.RemoteAddr)

	// Inbound frames are discarded; a read error is how we learn the client
	// went away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := wsConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		snap, err := h.service.Snapshot()
		if err != nil {
			// Keep the subscription; the next tick retries
			log.Errorf("Watch [%s]: %v", watcherID, err)
		} else if err := wsConn.WriteJSON(snap); err != nil {
			log.Infof("Watch [%s]: write failed, closing: %v", watcherID, err)
			return
		}

		select {
		case <-done:
			log.Infof("Watch [%s]: client disconnected", watcherID)
			return
		case <-ticker.C:
		}
	}
}

// writeError writes an error entity with the given status
func writeError(resp *restful.Response, status int, code, message string) {
	resp.WriteHeaderAndEntity(status, &model.HostError{
		Code:    code,
		Message: message,
	})
}
