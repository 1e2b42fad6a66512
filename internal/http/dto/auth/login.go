// Package auth contiene los DTOs de los endpoints /api/auth.
package auth

// LoginRequest es el body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"not_empty,email" msg:"not_empty:Email is required|email:Email must be a valid address"`
	Password string `json:"password" validate:"not_empty,min=8" msg:"not_empty:Password is required|min:Password must be at least 8 characters long"`
}

// LoginResponse es el token set de Auth0 renombrado al contrato interno.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
	Scope        string `json:"scope"`
}
