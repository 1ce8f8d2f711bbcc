package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the user summary attached to authentication responses
type UserInfo struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Image *string `json:"image,omitempty"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType" example:"Bearer"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}
