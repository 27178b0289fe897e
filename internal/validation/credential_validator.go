package validation

// CredentialValidator checks the register and login forms
type CredentialValidator struct {
	validator *Validator
}

// NewCredentialValidator creates a credential validator
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{validator: NewValidator()}
}

// ValidateRegistration requires all three fields and a well-formed email
func (cv *CredentialValidator) ValidateRegistration(username, email, password string) error {
	ve := NewValidationError()
	if !cv.validator.IsNonEmptyString(username) {
		ve.AddRequiredError("username")
	}
	cv.validateEmail(ve, email)
	if password == "" {
		ve.AddRequiredError("password")
	}
	return ve.ErrOrNil()
}

// ValidateLogin requires a well-formed email and a password
func (cv *CredentialValidator) ValidateLogin(email, password string) error {
	ve := NewValidationError()
	cv.validateEmail(ve, email)
	if password == "" {
		ve.AddRequiredError("password")
	}
	return ve.ErrOrNil()
}

func (cv *CredentialValidator) validateEmail(ve *ValidationError, email string) {
	email = cv.validator.TrimAndValidateString(email)
	if email == "" {
		ve.AddRequiredError("email")
		return
	}
	if !cv.validator.IsValidEmail(email) {
		ve.AddInvalidFormatError("email", email, "name@example.com")
	}
}
