package credential

import (
	"fmt"
	"unicode"

	"github.com/RavanHash/PokemonReviewAPI/pkg/constant"
)

// PolicyError carries every password-policy violation found during Create.
// The messages are non-sensitive and safe to return to the caller verbatim.
type PolicyError struct {
	Violations []string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("password policy violated: %d violation(s)", len(e.Violations))
}

// validatePassword checks the password against the account policy and
// returns one message per violated rule.
func validatePassword(password string) []string {
	var violations []string

	if len(password) < constant.MinPasswordLength {
		violations = append(violations,
			fmt.Sprintf("Passwords must be at least %d characters.", constant.MinPasswordLength))
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSpecial = true
		}
	}

	if !hasSpecial {
		violations = append(violations, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		violations = append(violations, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		violations = append(violations, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		violations = append(violations, "Passwords must have at least one uppercase ('A'-'Z').")
	}

	return violations
}
