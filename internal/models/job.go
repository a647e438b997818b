// internal/models/job.go
package models

import (
	"strings"
	"time"
)

// EmploymentType enumerates the allowed job posting employment types.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentFreelance  EmploymentType = "Freelance"
)

// LocationType enumerates the allowed work arrangements for a location.
type LocationType string

const (
	LocationOnsite LocationType = "Onsite"
	LocationHybrid LocationType = "Hybrid"
	LocationRemote LocationType = "Remote"
)

// JobStatus enumerates the lifecycle states of a posting.
type JobStatus string

const (
	JobStatusActive   JobStatus = "Active"
	JobStatusInactive JobStatus = "Inactive"
	JobStatusClosed   JobStatus = "Closed"
	JobStatusFilled   JobStatus = "Filled"
)

// Location is one entry of a posting's ordered location list.
type Location struct {
	City    string       `json:"city"`
	Country string       `json:"country"`
	Type    LocationType `json:"type"`
}

// SalaryRange holds the posting's salary bounds. Validation requires
// 0 < Min <= Max.
type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// JobPost is a staff-authored listing with locations, salary range and
// distribution sites.
type JobPost struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Department   string         `json:"department"`
	Type         EmploymentType `json:"type"`
	Experience   string         `json:"experience"`
	Requirements []string       `json:"requirements"`
	Locations    []Location     `json:"locations"`
	SalaryRange  SalaryRange    `json:"salaryRange"`
	ClosingDate  string         `json:"closingDate"`
	Status       JobStatus      `json:"status"`
	PosterLink   string         `json:"posterLink"`
	Sites        []string       `json:"sites"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// JobFormData is the create/update payload for a posting.
type JobFormData struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Department   string         `json:"department"`
	Type         EmploymentType `json:"type"`
	Experience   string         `json:"experience"`
	Requirements []string       `json:"requirements"`
	Locations    []Location     `json:"locations"`
	SalaryRange  SalaryRange    `json:"salaryRange"`
	ClosingDate  string         `json:"closingDate"`
	Status       JobStatus      `json:"status"`
	PosterLink   string         `json:"posterLink"`
	Sites        []string       `json:"sites"`
}

// CleanSites returns the form's site list with blank entries stripped.
func (f JobFormData) CleanSites() []string {
	out := make([]string, 0, len(f.Sites))
	for _, s := range f.Sites {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
