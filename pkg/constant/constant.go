package constant

const (
	// BearerScheme is the authorization scheme expected on protected routes.
	BearerScheme = "Bearer"

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6
)
