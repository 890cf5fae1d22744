package model

// Address is a single contact address of the host
type Address struct {
	Address string `json:"address"`
}

// AddressList is the full set of contact addresses of the host
type AddressList struct {
	Addresses []string `json:"addresses"`
}
