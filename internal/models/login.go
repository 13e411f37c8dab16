package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: Abcdef1!
	Password string `json:"password"`
}

// LoggedInResponse reports whether the caller holds a valid session token
// swagger:model LoggedInResponse
type LoggedInResponse struct {
	Bool    bool           `json:"bool"`
	Payload map[string]any `json:"payload,omitempty"`
}

// SingleUserResponse is returned for the current user
// swagger:model SingleUserResponse
type SingleUserResponse struct {
	User  *User `json:"user"`
	Admin bool  `json:"admin"`
}

// DeletedUserResponse is returned after a user delete
// swagger:model DeletedUserResponse
type DeletedUserResponse struct {
	DeletedUser *User  `json:"deletedUser"`
	Message     string `json:"message"`
}
