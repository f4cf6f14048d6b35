package dto

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}
