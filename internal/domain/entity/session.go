// Package entity contains the core business objects of the project.
package entity

// Session is the authenticated identity tuple cached for the current
// browser profile: bearer token, role tag, user id, and the denormalized
// user record used for display without refetching.
//
// The four fields are all present or all absent. Partial state is treated
// as corrupt and must force a cleanup, never a crash.
type Session struct {
	Token  string
	Role   Role
	UserID string
	User   *User
}

// Complete reports whether every field of the tuple is populated.
func (s *Session) Complete() bool {
	if s == nil {
		return false
	}

	return s.Token != "" && s.Role.IsValid() && s.UserID != "" && s.User != nil
}
