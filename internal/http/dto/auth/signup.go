package auth

// SignupRequest es el body de POST /api/auth/signup. Los nombres son opcionales.
type SignupRequest struct {
	Email      string `json:"email" validate:"not_empty,email" msg:"not_empty:Email is required|email:Email must be a valid address"`
	Password   string `json:"password" validate:"not_empty,min=8" msg:"not_empty:Password is required|min:Password must be at least 8 characters long"`
	Name       string `json:"name,omitempty"`
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
}
