package models

// ApplicationStatus tracks a job application through review.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationContacted ApplicationStatus = "contacted"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationDeclined  ApplicationStatus = "declined"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationContacted,
		ApplicationApproved, ApplicationDeclined:
		return true
	}
	return false
}

// JobApplication is a submission from the join page.
type JobApplication struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       string            `json:"role"`
	Portfolio  string            `json:"portfolio"`
	Motivation string            `json:"motivation"`
	Date       string            `json:"date"`
	Status     ApplicationStatus `json:"status"`
}
