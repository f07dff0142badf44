package model

// Role names recognised by the application.  Roles are stored as plain
// strings on the user record and inside session tokens.  There is no
// separate roles table; the set is fixed.
const (
	RoleOwner = "owner" // full control: users, settings, everything below
	RoleAdmin = "admin" // event and notification management
	RoleUser  = "user"  // booking only
)

// ValidRole reports whether s is one of the three known role names.
func ValidRole(s string) bool {
	return s == RoleOwner || s == RoleAdmin || s == RoleUser
}

// User represents an account record as stored in the `users` collection
// of the database document.  The Password field holds a bcrypt hash and
// is persisted to disk, but handlers must never echo it back to clients;
// API responses use separate summary types without the field.
//
// Fields:
//  ID       – unique identifier (UUID string).
//  Username – unique login name.
//  Password – bcrypt hash of the password.
//  Role     – one of owner, admin, user.
//  Name     – display name shown in booking listings.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}
