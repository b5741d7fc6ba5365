package models

// Credential represents an authentication record in the embedded credential store.
// The username is the user's phone number; uniqueness on it is the one hard
// invariant the store enforces.
type Credential struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
	Role         string `json:"role" db:"role"`
}

// RegisterRequest represents a request to register with username/password
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents a request to login with phone/password
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
