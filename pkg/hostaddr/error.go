package model

// HostError represents an error response from the hostaddr service
type HostError struct {
	Code    string `json:"code"`              // Error code
	Message string `json:"message"`           // Error message
	Details string `json:"details,omitempty"` // Additional error details
}
