package api_test

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazedo/yxa/internal/hostaddr/api"
	"github.com/lazedo/yxa/internal/hostaddr/service"
	model "github.com/lazedo/yxa/pkg/hostaddr"
	"github.com/lazedo/yxa/pkg/siphost"
)

type fakeEnumerator struct {
	ifaces []siphost.Interface
	err    error
}

func (f fakeEnumerator) Interfaces() ([]siphost.Interface, error) {
	return f.ifaces, f.err
}

func newTestServer(t *testing.T, fake fakeEnumerator, interval time.Duration) *httptest.Server {
	t.Helper()

	svc := service.NewWithResolver(siphost.NewWithEnumerator(fake))
	handler := api.NewHostHandler(svc, interval)

	container := restful.NewContainer()
	ws := new(restful.WebService)
	ws.Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	api.RegisterRoutes(ws, handler)
	container.Add(ws)

	server := httptest.NewServer(container)
	t.Cleanup(server.Close)
	return server
}

func twoNICs() fakeEnumerator {
	return fakeEnumerator{
		ifaces: []siphost.Interface{
			{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addr: siphost.IPv4{127, 0, 0, 1}},
			{Name: "eth0", Flags: net.FlagUp | net.FlagBroadcast, Addr: siphost.IPv4{192, 0, 2, 12}},
			{Name: "eth1", Flags: net.FlagUp | net.FlagBroadcast, Addr: siphost.IPv4{192, 0, 2, 11}},
		},
	}
}

func TestGetAddress(t *testing.T) {
	server := newTestServer(t, twoNICs(), time.Minute)

	resp, err := http.Get(server.URL + "/api/v1/address")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var addr model.Address
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&addr))
	assert.Equal(t, "192.0.2.12", addr.Address)
}

func TestGetAddresses(t *testing.T) {
	server := newTestServer(t, twoNICs(), time.Minute)

	resp, err := http.Get(server.URL + "/api/v1/addresses")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list model.AddressList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"192.0.2.11", "192.0.2.12"}, list.Addresses)
}

func TestGetAddressFallback(t *testing.T) {
	fake := fakeEnumerator{
		ifaces: []siphost.Interface{
			{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addr: siphost.IPv4{127, 0, 0, 1}},
		},
	}
	server := newTestServer(t, fake, time.Minute)

	// The fallback is an ordinary successful answer, not an error
	resp, err := http.Get(server.URL + "/api/v1/address")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var addr model.Address
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&addr))
	assert.Equal(t, siphost.DefaultAddress, addr.Address)
}

func TestGetInterfaces(t *testing.T) {
	server := newTestServer(t, twoNICs(), time.Minute)

	resp, err := http.Get(server.URL + "/api/v1/interfaces")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ifaces []model.Interface
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ifaces))
	require.Len(t, ifaces, 3)
	assert.Equal(t, "lo", ifaces[0].Name)
	assert.False(t, ifaces[0].Usable)
	assert.Equal(t, "eth0", ifaces[1].Name)
	assert.True(t, ifaces[1].Usable)
}

func TestGetVersion(t *testing.T) {
	server := newTestServer(t, twoNICs(), time.Minute)

	resp, err := http.Get(server.URL + "/api/v1/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info model.VersionInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "v1", info.APIVersion)
	assert.NotEmpty(t, info.Version)
}

func TestEnumerationErrorResponse(t *testing.T) {
	fake := fakeEnumerator{err: errors.New("netlink: permission denied")}
	server := newTestServer(t, fake, time.Minute)

	for _, path := range []string{"/address", "/addresses", "/interfaces"} {
		resp, err := http.Get(server.URL + "/api/v1" + path)
		require.NoError(t, err)

		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)

		var herr model.HostError
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&herr))
		resp.Body.Close()
		assert.Equal(t, "EnumerationError", herr.Code, path)
		assert.Contains(t, herr.Message, "permission denied", path)
	}
}

func TestWatchStreamsSnapshots(t *testing.T) {
	server := newTestServer(t, twoNICs(), 50*time.Millisecond)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/watch"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	// First snapshot arrives on connect, the next on the following tick
	var first, second model.Snapshot
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, "192.0.2.12", first.Address)
	assert.Equal(t, []string{"192.0.2.11", "192.0.2.12"}, first.Addresses)
	assert.Len(t, first.Interfaces, 3)
	assert.False(t, first.TakenAt.IsZero())

	assert.Equal(t, first.Address, second.Address)
	assert.False(t, second.TakenAt.Before(first.TakenAt))
}
