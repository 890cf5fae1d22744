package service

import (
	"fmt"
	"os"
	"time"

	"github.com/lazedo/yxa/internal/version"
	model "github.com/lazedo/yxa/pkg/hostaddr"
	"github.com/lazedo/yxa/pkg/siphost"
)

// HostService answers contact address queries. Every call goes back to the
// platform through the resolver; nothing is cached between calls.
type HostService struct {
	resolver *siphost.Resolver
}

// New creates a HostService backed by the operating system
func New() *HostService {
	return NewWithResolver(siphost.New())
}

// NewWithResolver creates a HostService backed by resolver
func NewWithResolver(resolver *siphost.Resolver) *HostService {
	return &HostService{resolver: resolver}
}

// Address returns one contact address of the host
func (s *HostService) Address() (*model.Address, error) {
	addr, err := s.resolver.Address()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}
	return &model.Address{Address: addr}, nil
}

// Addresses returns all contact addresses of the host
func (s *HostService) Addresses() (*model.AddressList, error) {
	addrs, err := s.resolver.Addresses()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}
	return &model.AddressList{Addresses: addrs}, nil
}

// Interfaces returns the diagnostic interface table, one record per
// interface with its filter verdict
func (s *HostService) Interfaces() ([]model.Interface, error) {
	records, err := s.resolver.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	ifaces := make([]model.Interface, 0, len(records))
	for _, rec := range records {
		ifc := model.Interface{
			Name:   rec.Name,
			Flags:  rec.Flags.String(),
			Usable: rec.Usable(),
		}
		if rec.Addr != nil {
			ifc.Address = rec.Addr.String()
		}
		ifaces = append(ifaces, ifc)
	}
	return ifaces, nil
}

// Snapshot returns the full current view of the host's addresses, the unit
// pushed to watchers
func (s *HostService) Snapshot() (*model.Snapshot, error) {
	addr, err := s.Address()
	if err != nil {
		return nil, err
	}
	addrs, err := s.Addresses()
	if err != nil {
		return nil, err
	}
	ifaces, err := s.Interfaces()
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	return &model.Snapshot{
		Address:    addr.Address,
		Addresses:  addrs.Addresses,
		Interfaces: ifaces,
		Hostname:   hostname,
		TakenAt:    time.Now().UTC(),
	}, nil
}

// Version returns daemon version information
func (s *HostService) Version() *model.VersionInfo {
	return version.Info()
}
