// Package siphost resolves the local host's usable contact addresses.
//
// A contact address is an interface address that can be handed to other
// hosts, for example inside protocol headers: the interface must be up and
// the address must not be a loopback address. Addresses are returned as
// strings, dotted decimal for IPv4 and bracketed colon-hex for IPv6. When no
// interface qualifies the fixed fallback DefaultAddress is returned instead,
// so callers always get at least one address.
package siphost

import "sort"

// DefaultAddress is the fallback contact address used when no usable
// interface exists.
const DefaultAddress = "127.0.0.1"

// Resolver answers contact address queries from interface snapshots. Every
// query re-reads the enumerator; a Resolver holds no state of its own and is
// safe for concurrent use when its enumerator is.
type Resolver struct {
	enum Enumerator
}

// New creates a Resolver backed by the operating system's interface tables.
func New() *Resolver {
	return NewWithEnumerator(systemEnumerator{})
}

// NewWithEnumerator creates a Resolver that reads snapshots from enum.
func NewWithEnumerator(enum Enumerator) *Resolver {
	return &Resolver{enum: enum}
}

// Address returns one contact address: the address of the first usable
// interface in enumeration order, or DefaultAddress when there is none.
func (r *Resolver) Address() (string, error) {
	addrs, err := r.usableAddrs()
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return DefaultAddress, nil
	}
	return addrs[0], nil
}

// Addresses returns every contact address, deduplicated and sorted in plain
// ascending string order. When no usable interface exists the result is
// exactly [DefaultAddress].
func (r *Resolver) Addresses() ([]string, error) {
	addrs, err := r.usableAddrs()
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return []string{DefaultAddress}, nil
	}
	sort.Strings(addrs)
	// Two interfaces may carry the same address; drop the repeats in place.
	uniq := addrs[:1]
	for _, addr := range addrs[1:] {
		if addr != uniq[len(uniq)-1] {
			uniq = append(uniq, addr)
		}
	}
	return uniq, nil
}

// Interfaces returns the raw interface snapshots, unfiltered.
func (r *Resolver) Interfaces() ([]Interface, error) {
	return r.enum.Interfaces()
}

// usableAddrs enumerates, filters and formats, keeping enumeration order. An
// enumeration failure aborts the whole query.
func (r *Resolver) usableAddrs() ([]string, error) {
	ifaces, err := r.enum.Interfaces()
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, ifc := range ifaces {
		if !ifc.Usable() {
			continue
		}
		addrs = append(addrs, ifc.Addr.String())
	}
	return addrs, nil
}

// Address returns one contact address for this host, read from the operating
// system's interface tables.
func Address() (string, error) {
	return New().Address()
}

// Addresses returns all contact addresses for this host, read from the
// operating system's interface tables.
func Addresses() ([]string, error) {
	return New().Addresses()
}
