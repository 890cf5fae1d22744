package model

import (
	"time"
)

// Snapshot is one observation of the host's contact addresses
type Snapshot struct {
	Address    string      `json:"address"`
	Addresses  []string    `json:"addresses"`
	Interfaces []Interface `json:"interfaces"`
	Hostname   string      `json:"hostname,omitempty"`
	TakenAt    time.Time   `json:"taken_at"`
}
