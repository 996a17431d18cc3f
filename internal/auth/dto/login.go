package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() []string {
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
