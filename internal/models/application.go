// internal/models/application.go
package models

import "time"

// ApplicationStatus enumerates the staff review states. Assigned by the
// server on submission and mutable only via the staff status endpoint.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusReviewed    ApplicationStatus = "Reviewed"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// KnownStatus reports whether s is one of the fixed review states.
func KnownStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// ApplicationSource enumerates where a candidate found the posting.
type ApplicationSource string

const (
	SourceWebsite  ApplicationSource = "Website"
	SourceReferral ApplicationSource = "Referral"
	SourceLinkedIn ApplicationSource = "LinkedIn"
	SourceJobBoard ApplicationSource = "Job Board"
	SourceOther    ApplicationSource = "Other"
)

// KnownSource reports whether s is one of the fixed sources.
func KnownSource(s ApplicationSource) bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceLinkedIn, SourceJobBoard, SourceOther:
		return true
	}
	return false
}

// MaxReferences caps the reference list; the intake form enforces the
// same bound client-side.
const MaxReferences = 2

// Education holds the candidate's highest qualification.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduationYear"`
}

// Reference is one professional reference; at most two per application.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Application is a candidate's submitted response to a job posting.
// JSON field names follow the wire format the review tooling consumes.
type Application struct {
	ID                string            `json:"_id"`
	JobID             string            `json:"JobID"`
	JobTitle          string            `json:"JobTitle"`
	CandidateName     string            `json:"CandidateName"`
	DOB               string            `json:"DOB"`
	Email             string            `json:"Email"`
	Phone             string            `json:"Phone"`
	CurrentLocation   string            `json:"CurrentLocation"`
	WillingToRelocate bool              `json:"WillingToRelocate"`
	YearsOfExperience int               `json:"YearsOfExperience"`
	CurrentSalary     string            `json:"CurrentSalary"`
	ExpectedSalary    int64             `json:"ExpectedSalary"`
	NoticePeriod      string            `json:"NoticePeriod"`
	Education         Education         `json:"Education"`
	LinkedInURL       string            `json:"LinkedInURL"`
	PortfolioURL      string            `json:"PortfolioURL"`
	CoverLetter       string            `json:"CoverLetter"`
	Notes             string            `json:"Notes"`
	ResumeFileName    string            `json:"ResumeFileName"`
	ResumeURL         string            `json:"ResumeURL"`
	Skills            []string          `json:"Skills"`
	References        []Reference       `json:"References"`
	CustomAnswers     map[string]string `json:"CustomAnswers"`
	Source            ApplicationSource `json:"Source"`
	ApplicationStatus ApplicationStatus `json:"ApplicationStatus"`
	AppliedDate       time.Time         `json:"AppliedDate"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// ApplicationPayload is the intake submission body. Status and dates are
// server-assigned and therefore absent.
type ApplicationPayload struct {
	JobID             string            `json:"JobID"`
	JobTitle          string            `json:"JobTitle"`
	CandidateName     string            `json:"CandidateName"`
	DOB               string            `json:"DOB"`
	Email             string            `json:"Email"`
	Phone             string            `json:"Phone"`
	CurrentLocation   string            `json:"CurrentLocation"`
	WillingToRelocate bool              `json:"WillingToRelocate"`
	YearsOfExperience int               `json:"YearsOfExperience"`
	CurrentSalary     string            `json:"CurrentSalary"`
	ExpectedSalary    int64             `json:"ExpectedSalary"`
	NoticePeriod      string            `json:"NoticePeriod"`
	Education         Education         `json:"Education"`
	LinkedInURL       string            `json:"LinkedInURL"`
	PortfolioURL      string            `json:"PortfolioURL"`
	CoverLetter       string            `json:"CoverLetter"`
	Notes             string            `json:"Notes"`
	ResumeFileName    string            `json:"ResumeFileName"`
	ResumeURL         string            `json:"ResumeURL"`
	Skills            []string          `json:"Skills"`
	References        []Reference       `json:"References"`
	CustomAnswers     map[string]string `json:"CustomAnswers"`
	Source            ApplicationSource `json:"Source"`
}

// ApplicationList is the paginated review-table response.
type ApplicationList struct {
	Data       []Application `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}
