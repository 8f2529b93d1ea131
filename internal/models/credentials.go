package models

// Roles understood by the credentials check.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Credentials identifies the caller of a request.
type Credentials struct {
	Role string `json:"role"`
	ID   uint   `json:"id"`
}

// IsAdmin reports whether the caller is a back-office admin.
func (c *Credentials) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Owns reports whether the caller is the regular user with the given id.
func (c *Credentials) Owns(userID uint) bool {
	return c != nil && c.Role == RoleUser && c.ID == userID
}

// LoginRequest is the body accepted by the login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
}
