package dto

// RegisterRequest describes the registration form payload.
type RegisterRequest struct {
	Site     string `json:"site"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthRequest describes login/password payload.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ResetPasswordRequest identifies the account asking for a temporary credential.
type ResetPasswordRequest struct {
	Email string `json:"email"`
	Site  string `json:"site"`
}
