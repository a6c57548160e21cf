package domain

var (
	AUTH_REGISTER_SUCCESS = "Registration successful"
	AUTH_REGISTER_FAILED  = "Registration failed"
	AUTH_LOGIN_SUCCESS    = "Login successful"
	AUTH_LOGIN_FAILED     = "Login failed"
	AUTH_LOGOUT_SUCCESS   = "Logout successful"
	AUTH_LOGOUT_FAILED    = "Logout failed"
	AUTH_ME_SUCCESS       = "Successfully fetched current user"
	AUTH_ME_FAILED        = "Failed to fetch current user"
	AUTH_REQUIRED         = "Not logged in"
	AUTH_PARENT_ONLY      = "Parents only"
)
