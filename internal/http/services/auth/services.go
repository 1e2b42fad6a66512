package auth

// Deps contiene las dependencias compartidas por los services auth.
type Deps struct {
	Provider IdentityProvider
}

// Services agrupa todos los services del dominio auth.
type Services struct {
	Login        LoginService
	Signup       SignupService
	Verification VerificationService
}

// NewServices crea el agregador de services auth.
func NewServices(d Deps) Services {
	return Services{
		Login:        NewLoginService(d),
		Signup:       NewSignupService(d),
		Verification: NewVerificationService(d),
	}
}
