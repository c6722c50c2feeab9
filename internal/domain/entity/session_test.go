package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
		ok    bool
	}{
		{"Candidate", "candidate", RoleCandidate, true},
		{"Company", "company", RoleCompany, true},
		{"Admin", "admin", RoleAdmin, true},
		{"Unknown", "merchant", Role("merchant"), false},
		{"Empty", "", Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSession_Complete(t *testing.T) {
	user := &User{ID: "42", Email: "ana@example.com", Role: RoleCandidate}

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"Full tuple", &Session{Token: "tok", Role: RoleCandidate, UserID: "42", User: user}, true},
		{"Nil session", nil, false},
		{"Missing token", &Session{Role: RoleCandidate, UserID: "42", User: user}, false},
		{"Invalid role", &Session{Token: "tok", Role: Role("guest"), UserID: "42", User: user}, false},
		{"Missing user id", &Session{Token: "tok", Role: RoleCandidate, User: user}, false},
		{"Missing profile", &Session{Token: "tok", Role: RoleCandidate, UserID: "42"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.Complete())
		})
	}
}
