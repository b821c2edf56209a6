package entity

// Session is the server-verified identity of the current caller.
// A nil *Session means the request is anonymous.
type Session struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
