// internal/common/validation/rules.go
package validation

import (
	"fmt"
	"strings"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/models"
)

// Mode selects which rule rows apply. The free-text mode carries only the
// location completeness checks; the strict mode additionally constrains
// enumerated fields, sites and the salary range. The server always
// validates strictly; form clients may pre-flight in either mode.
type Mode int

const (
	ModeFreeText Mode = iota
	ModeStrict
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// FieldErrors converts the result into the API error shape.
func (r *ValidationResult) FieldErrors() []apperrors.FieldError {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]apperrors.FieldError, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, apperrors.FieldError{Field: e.Field, Message: e.Message})
	}
	return out
}

// Rule is one row of the declarative field-and-rule table.
type Rule struct {
	Field  string
	Strict bool // applies only in ModeStrict
	Check  func(f models.JobFormData) []ValidationError
}

// jobRules is the consolidated rule table for both job form variants.
// Every violated row yields its own error entry.
var jobRules = []Rule{
	{
		Field: "title",
		Check: requireString("title", func(f models.JobFormData) string { return f.Title }),
	},
	{
		Field: "description",
		Check: requireString("description", func(f models.JobFormData) string { return f.Description }),
	},
	{
		Field: "department",
		Check: requireString("department", func(f models.JobFormData) string { return f.Department }),
	},
	{
		Field:  "type",
		Strict: true,
		Check: func(f models.JobFormData) []ValidationError {
			switch f.Type {
			case models.EmploymentFullTime, models.EmploymentPartTime, models.EmploymentContract,
				models.EmploymentInternship, models.EmploymentFreelance:
				return nil
			}
			return []ValidationError{{
				Field:   "type",
				Message: fmt.Sprintf("employment type %q is not one of the allowed options", f.Type),
				Code:    "INVALID_ENUM",
			}}
		},
	},
	{
		Field:  "status",
		Strict: true,
		Check: func(f models.JobFormData) []ValidationError {
			switch f.Status {
			case models.JobStatusActive, models.JobStatusInactive, models.JobStatusClosed, models.JobStatusFilled:
				return nil
			}
			return []ValidationError{{
				Field:   "status",
				Message: fmt.Sprintf("status %q is not one of the allowed options", f.Status),
				Code:    "INVALID_ENUM",
			}}
		},
	},
	{
		Field: "locations",
		Check: func(f models.JobFormData) []ValidationError {
			if len(f.Locations) == 0 {
				return []ValidationError{{
					Field:   "locations",
					Message: "at least one location is required",
					Code:    "REQUIRED_FIELD_MISSING",
				}}
			}
			var errs []ValidationError
			for i, loc := range f.Locations {
				if strings.TrimSpace(loc.City) == "" {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("locations[%d].city", i),
						Message: fmt.Sprintf("location %d: city is required", i+1),
						Code:    "REQUIRED_FIELD_MISSING",
					})
				}
				if strings.TrimSpace(loc.Country) == "" {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("locations[%d].country", i),
						Message: fmt.Sprintf("location %d: country is required", i+1),
						Code:    "REQUIRED_FIELD_MISSING",
					})
				}
			}
			return errs
		},
	},
	{
		Field:  "locations.type",
		Strict: true,
		Check: func(f models.JobFormData) []ValidationError {
			var errs []ValidationError
			for i, loc := range f.Locations {
				switch loc.Type {
				case models.LocationOnsite, models.LocationHybrid, models.LocationRemote:
				default:
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("locations[%d].type", i),
						Message: fmt.Sprintf("location %d: type %q is not one of the allowed options", i+1, loc.Type),
						Code:    "INVALID_ENUM",
					})
				}
			}
			return errs
		},
	},
	{
		Field:  "sites",
		Strict: true,
		Check: func(f models.JobFormData) []ValidationError {
			if len(f.CleanSites()) == 0 {
				return []ValidationError{{
					Field:   "sites",
					Message: "at least one distribution site is required",
					Code:    "REQUIRED_FIELD_MISSING",
				}}
			}
			return nil
		},
	},
	{
		Field:  "salaryRange",
		Strict: true,
		Check: func(f models.JobFormData) []ValidationError {
			var errs []ValidationError
			if f.SalaryRange.Min <= 0 {
				errs = append(errs, ValidationError{
					Field:   "salaryRange.min",
					Message: "salary minimum must be greater than zero",
					Code:    "OUT_OF_RANGE",
				})
			}
			if f.SalaryRange.Max <= 0 {
				errs = append(errs, ValidationError{
					Field:   "salaryRange.max",
					Message: "salary maximum must be greater than zero",
					Code:    "OUT_OF_RANGE",
				})
			}
			if f.SalaryRange.Min > 0 && f.SalaryRange.Max > 0 && f.SalaryRange.Max < f.SalaryRange.Min {
				errs = append(errs, ValidationError{
					Field:   "salaryRange",
					Message: "salary maximum must not be less than the minimum",
					Code:    "OUT_OF_RANGE",
				})
			}
			return errs
		},
	},
	{
		Field:  "closingDate",
		Strict: true,
		Check:  requireString("closingDate", func(f models.JobFormData) string { return f.ClosingDate }),
	},
}

func requireString(field string, get func(models.JobFormData) string) func(models.JobFormData) []ValidationError {
	return func(f models.JobFormData) []ValidationError {
		if strings.TrimSpace(get(f)) == "" {
			return []ValidationError{{
				Field:   field,
				Message: field + " is required",
				Code:    "REQUIRED_FIELD_MISSING",
			}}
		}
		return nil
	}
}

// ValidateJobForm evaluates the rule table against the form in order and
// returns every violation, not just the first. Blank sites are stripped
// before the site rule runs (CleanSites).
func ValidateJobForm(f models.JobFormData, mode Mode) *ValidationResult {
	var errs []ValidationError
	for _, rule := range jobRules {
		if rule.Strict && mode != ModeStrict {
			continue
		}
		errs = append(errs, rule.Check(f)...)
	}
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
