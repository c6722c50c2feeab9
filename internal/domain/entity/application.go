// Package entity contains the core business objects of the project.
package entity

import "time"

// ApplicationStatus represents the lifecycle state of a candidate's
// submission to a job posting. Transitions are driven by the remote
// backend; this side only mirrors the four known values.
type ApplicationStatus string

const (
	// StatusPending is the implicit initial state of a new application.
	StatusPending ApplicationStatus = "pending"
	// StatusViewed indicates the company has opened the application.
	StatusViewed ApplicationStatus = "viewed"
	// StatusAccepted is a terminal state for the candidate.
	StatusAccepted ApplicationStatus = "accepted"
	// StatusRejected is a terminal state for the candidate.
	StatusRejected ApplicationStatus = "rejected"
)

// String returns the string representation of the status.
func (s ApplicationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusViewed, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status ends the candidate's side of the
// lifecycle: once accepted or rejected there is no re-apply.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseApplicationStatus normalizes a raw backend status. An empty value
// means the backend did not supply one and defaults to pending.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	if s == "" {
		return StatusPending, true
	}

	status := ApplicationStatus(s)

	return status, status.IsValid()
}

// Application is a candidate's submission to a single job posting.
// The id is assigned by the backend on creation; CandidateID equals the
// session's user id at creation time. At most one application may exist
// per (JobID, CandidateID) pair.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"applied_at"`
}
