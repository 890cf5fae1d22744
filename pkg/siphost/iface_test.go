package siphost_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazedo/yxa/pkg/siphost"
)

func TestInterfaceUsable(t *testing.T) {
	tests := []struct {
		name  string
		iface siphost.Interface
		want  bool
	}{
		{
			name: "up with routable address",
			iface: siphost.Interface{
				Name:  "eth0",
				Flags: net.FlagUp | net.FlagBroadcast | net.FlagRunning,
				Addr:  siphost.IPv4{192, 0, 2, 5},
			},
			want: true,
		},
		{
			name: "no address",
			iface: siphost.Interface{
				Name:  "eth1",
				Flags: net.FlagUp | net.FlagBroadcast,
			},
			want: false,
		},
		{
			name: "down",
			iface: siphost.Interface{
				Name:  "eth2",
				Flags: net.FlagBroadcast,
				Addr:  siphost.IPv4{192, 0, 2, 5},
			},
			want: false,
		},
		{
			name: "flags cleared",
			iface: siphost.Interface{
				Name: "eth3",
				Addr: siphost.IPv4{192, 0, 2, 5},
			},
			want: false,
		},
		{
			name: "loopback address",
			iface: siphost.Interface{
				Name:  "lo",
				Flags: net.FlagUp | net.FlagLoopback,
				Addr:  siphost.IPv4{127, 0, 0, 1},
			},
			want: false,
		},
		{
			name: "address anywhere in 127/8",
			iface: siphost.Interface{
				Name:  "dummy0",
				Flags: net.FlagUp,
				Addr:  siphost.IPv4{127, 250, 0, 99},
			},
			want: false,
		},
		{
			name: "ipv6 loopback address",
			iface: siphost.Interface{
				Name:  "lo",
				Flags: net.FlagUp | net.FlagLoopback,
				Addr:  siphost.IPv6{0, 0, 0, 0, 0, 0, 0, 1},
			},
			want: false,
		},
		{
			name: "ipv6 routable address",
			iface: siphost.Interface{
				Name:  "eth0",
				Flags: net.FlagUp | net.FlagMulticast,
				Addr:  siphost.IPv6{0x2001, 0x6b0, 0x5, 0x987, 0, 0, 0, 1},
			},
			want: true,
		},
		{
			// Flags decide the up check only; a loopback-flagged interface
			// carrying a routable address still qualifies.
			name: "loopback flag with routable address",
			iface: siphost.Interface{
				Name:  "lo:1",
				Flags: net.FlagUp | net.FlagLoopback,
				Addr:  siphost.IPv4{192, 0, 2, 77},
			},
			want: true,
		},
		{
			name: "down loopback",
			iface: siphost.Interface{
				Name:  "lo",
				Flags: net.FlagLoopback,
				Addr:  siphost.IPv4{127, 0, 0, 1},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.iface.Usable())
		})
	}
}
