package models

// MessageResponse is the generic {message} body used by most endpoints
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Unauthorized!
	Message string `json:"message"`
}

// ServerErrorResponse is returned for unexpected failures
// swagger:model ServerErrorResponse
type ServerErrorResponse struct {
	// example: Server Error
	Msg string `json:"msg"`
	// Raw cause
	Err string `json:"err"`
}

// HealthResponse reports dependency status
// swagger:model HealthResponse
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
