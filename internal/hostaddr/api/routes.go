package api

import (
	restful "github.com/emicklei/go-restful/v3"

	model "github.com/lazedo/yxa/pkg/hostaddr"
)

// RegisterRoutes registers all host address routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *HostHandler) {
	ws.Route(ws.GET("/address").To(handler.GetAddress).
		Doc("get one contact address of the host").
		Returns(200, "OK", model.Address{}).
		Returns(500, "Internal Server Error", model.HostError{}))

	ws.Route(ws.GET("/addresses").To(handler.GetAddresses).
		Doc("list all contact addresses of the host").
		Returns(200, "OK", model.AddressList{}).
		Returns(500, "Internal Server Error", model.HostError{}))

	ws.Route(ws.GET("/interfaces").To(handler.GetInterfaces).
		Doc("list network interfaces with filter verdicts").
		Returns(200, "OK", []model.Interface{}).
		Returns(500, "Internal Server Error", model.HostError{}))

	ws.Route(ws.GET("/version").To(handler.GetVersion).
		Doc("get daemon version information").
		Returns(200, "OK", model.VersionInfo{}))

	// WebSocket upgrade; snapshots stream until the client disconnects
	ws.Route(ws.GET("/watch").To(handler.WatchAddresses).
		Doc("stream address snapshots over a WebSocket").
		Returns(101, "Switching Protocols", nil).
		Returns(500, "Internal Server Error", model.HostError{}))
}
