package auth

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"not_empty,email" msg:"not_empty:Email is required|email:Email must be valid"`
}

type ResendVerificationResponse struct {
	Message string `json:"message"`
}
