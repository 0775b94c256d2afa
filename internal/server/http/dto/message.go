package dto

// MessageResponse is the envelope for informational and error responses.
// Severity mirrors the UI flash categories: success, info, warning, error.
type MessageResponse struct {
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Errors   []string `json:"errors,omitempty"`
}
