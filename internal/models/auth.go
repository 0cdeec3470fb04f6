package models

// Account roles returned by login and embedded in JWT claims.
const (
	RoleShelter = "SHELTER"
	RoleUser    = "USER"
)

// LoginRequest carries the credentials for both account kinds. PasswordHash
// is the client's opaque secret; the server bcrypt-compares it against the
// stored hash.
type LoginRequest struct {
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

// LoginResponse identifies the authenticated account and its role, plus a
// signed token for the protected endpoints.
type LoginResponse struct {
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// RegisterResponse returns the id assigned to a newly registered account.
type RegisterResponse struct {
	ID int64 `json:"id"`
}
