package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64      `json:"id" db:"id"`                     // Primary key
	Email        string     `json:"email" db:"email"`               // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`           // Hashed password, never serialized
	FirstName    string     `json:"firstName" db:"first_name"`      // Given name
	LastName     string     `json:"lastName" db:"last_name"`        // Family name
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`      // Creation timestamp
	LastLoginAt  *time.Time `json:"lastLoginAt" db:"last_login_at"` // Last successful login
	IsActive     bool       `json:"isActive" db:"is_active"`        // Gates authentication
}

// FullName returns "First Last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CreateUserRequest is the JSON body for POST /api/users
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,max=100"`

	// required: true
	// example: John
	FirstName string `json:"firstName" validate:"required,max=100"`

	// required: true
	// example: Doe
	LastName string `json:"lastName" validate:"required,max=100"`
}

// UpdateUserRequest is the JSON body for PUT /api/users/{id}.
// An empty Password keeps the stored hash; a nil IsActive keeps the flag.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	ID        int64  `json:"id"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"max=100"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	IsActive  *bool  `json:"isActive"`
}

// UserSummary is the public part of a user returned after authentication
// swagger:model UserSummary
type UserSummary struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewUserSummary builds a UserSummary from a stored user.
func NewUserSummary(u *User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
