package dto

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate returns field-level validation errors. Registration must fail
// closed before any lookup runs.
func (in *RegisterInput) Validate() []string {
	var errs []string

	if in.Email == "" {
		errs = append(errs, "The Email field is required.")
	} else if !isValidEmail(in.Email) {
		errs = append(errs, "The Email field is not a valid e-mail address.")
	}

	if in.Password == "" {
		errs = append(errs, "The Password field is required.")
	}

	return errs
}
