package constants

// Session roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	// Name shown in API responses for staff sessions. Administrators do
	// not have a student profile, so they surface as a synthetic identity.
	AdminDisplayName = "Admin User"
)

// Session transport
const (
	SessionCookie = "session"
)
