package dto

import "net/mail"

// AuthResult is the wire response for register and login. Result=true always
// pairs with a non-empty token; Result=false always pairs with at least one
// error message.
type AuthResult struct {
	Result bool     `json:"result"`
	Token  string   `json:"token,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func Success(token string) *AuthResult {
	return &AuthResult{Result: true, Token: token}
}

func Failure(errs ...string) *AuthResult {
	return &AuthResult{Result: false, Errors: errs}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
