package models

// LoginRequest is the login form and the body of POST /api/users/authenticate
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`

	RememberMe bool `json:"rememberMe"`
}

// RegisterRequest is the registration form
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
}

// AuthenticateResponse is returned by POST /api/users/authenticate
// swagger:model AuthenticateResponse
type AuthenticateResponse struct {
	// example: Authentication successful
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// ErrorResponse is the JSON error body of the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Company name already exists
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
