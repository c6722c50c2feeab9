// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the denormalized account record returned by the identity provider.
// It carries only the fundamental identity shared across all roles; the
// role-specific profile pointers are nil for roles the account does not hold.
// Identifiers are assigned by the remote backend and treated as opaque.
type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	Name             string            `json:"name"`
	Role             Role              `json:"user_type"`
	CandidateProfile *CandidateProfile `json:"candidate_profile,omitempty"`
	CompanyProfile   *CompanyProfile   `json:"company_profile,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// CandidateProfile holds data specific to the "candidate" role.
type CandidateProfile struct {
	CandidateID string `json:"candidate_id"`
	Headline    string `json:"headline"`
	Location    string `json:"location"`
	ResumeURL   string `json:"resume_url"`
}

// CompanyProfile holds data specific to the "company" role.
type CompanyProfile struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
}
