package model

// Interface describes one network interface as seen by the resolver
type Interface struct {
	Name    string `json:"name"`              // Interface name, e.g. "eth0"
	Flags   string `json:"flags"`             // Platform flag names, e.g. "up|broadcast|multicast"
	Address string `json:"address,omitempty"` // Contact form of the address, empty when absent
	Usable  bool   `json:"usable"`            // Whether the address passed the contact filter
}
