package siphost

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
)

// IPv4 is a raw IPv4 interface address, one octet per element.
type IPv4 [4]byte

// IPv6 is a raw IPv6 interface address, as eight 16-bit groups.
type IPv6 [8]uint16

// Addr is a raw interface address as read from the platform. IPv4 and IPv6
// are the only implementations, so no other address shape can reach the
// formatter.
type Addr interface {
	// String returns the contact form of the address: dotted decimal for
	// IPv4, bracketed lowercase colon-hex for IPv6.
	String() string

	isAddr()
}

// String returns the address in dotted decimal form, e.g. "192.0.2.1".
func (a IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

func (IPv4) isAddr() {}

// String returns the address in canonical lowercase colon-hex form wrapped
// in square brackets, e.g. "[2001:6b0:5:987::1]". The textual conversion,
// including zero compression, is done by net.IP; this method only
// lower-cases and brackets the result.
func (a IPv6) String() string {
	ip := make(net.IP, net.IPv6len)
	for i, group := range a {
		binary.BigEndian.PutUint16(ip[2*i:], group)
	}
	return "[" + strings.ToLower(ip.String()) + "]"
}

func (IPv6) isAddr() {}

// FromIP converts a net.IP into its raw tagged form. Four-byte addresses and
// IPv4-mapped IPv6 addresses become IPv4, other 16-byte addresses become
// IPv6, anything else yields nil.
func FromIP(ip net.IP) Addr {
	if ip4 := ip.To4(); ip4 != nil {
		return IPv4{ip4[0], ip4[1], ip4[2], ip4[3]}
	}
	if ip16 := ip.To16(); ip16 != nil {
		var groups IPv6
		for i := range groups {
			groups[i] = binary.BigEndian.Uint16(ip16[2*i:])
		}
		return groups
	}
	return nil
}
