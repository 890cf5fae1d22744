package siphost

import (
	"fmt"
	"net"
)

// Interface is the snapshot of one network interface: its name, its status
// flags and the single address the platform reports for it. Addr is nil when
// the interface has no address.
type Interface struct {
	Name  string
	Flags net.Flags
	Addr  Addr
}

// loopback6 is ::1.
var loopback6 = IPv6{0, 0, 0, 0, 0, 0, 0, 1}

// Usable reports whether the interface address can serve as a contact
// address: the interface must be up, the address must be present and it must
// not be a loopback address (IPv4 127.0.0.0/8 or IPv6 ::1). The loopback
// flag itself is not consulted, so an up interface flagged loopback but
// holding a routable address passes.
func (ifc Interface) Usable() bool {
	if ifc.Addr == nil {
		return false
	}
	if ifc.Flags&net.FlagUp == 0 {
		return false
	}
	switch addr := ifc.Addr.(type) {
	case IPv4:
		if addr[0] == 127 {
			return false
		}
	case IPv6:
		if addr == loopback6 {
			return false
		}
	}
	return true
}

// Enumerator supplies interface snapshots. Implementations return every
// interface the platform reports, usable or not; filtering happens in the
// Resolver.
type Enumerator interface {
	Interfaces() ([]Interface, error)
}

// systemEnumerator reads interface snapshots from the operating system.
type systemEnumerator struct{}

func (systemEnumerator) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list network interfaces: %w", err)
	}

	records := make([]Interface, 0, len(ifaces))
	for _, ifi := range ifaces {
		addrs, err := ifi.Addrs()
		if err != nil {
			return nil, fmt.Errorf("addresses of %s: %w", ifi.Name, err)
		}
		records = append(records, Interface{
			Name:  ifi.Name,
			Flags: ifi.Flags,
			Addr:  firstAddr(addrs),
		})
	}
	return records, nil
}

// firstAddr picks the first IP address out of a platform address list. Only
// one address per interface is kept.
func firstAddr(addrs []net.Addr) Addr {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}
		if raw := FromIP(ip); raw != nil {
			return raw
		}
	}
	return nil
}
