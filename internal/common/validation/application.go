// internal/common/validation/application.go
package validation

import (
	"fmt"
	"strings"

	"careers-backend/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// customAnswersSchema constrains CustomAnswers to a flat question→answer
// object of strings.
const customAnswersSchema = `{
	"type": "object",
	"additionalProperties": {"type": "string"},
	"maxProperties": 50
}`

// ValidateApplication checks the intake payload in the order the form
// applies it: resume first, then the required identity fields, then the
// conditional reference rules and enumerated fields.
func ValidateApplication(p models.ApplicationPayload) *ValidationResult {
	var errs []ValidationError

	if strings.TrimSpace(p.ResumeURL) == "" {
		errs = append(errs, ValidationError{
			Field:   "ResumeURL",
			Message: "a resume must be uploaded before submitting the application",
			Code:    "REQUIRED_FIELD_MISSING",
		})
	}

	required := []struct {
		field string
		value string
	}{
		{"CandidateName", p.CandidateName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"DOB", p.DOB},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, ValidationError{
				Field:   r.field,
				Message: r.field + " is required",
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	if len(p.References) > models.MaxReferences {
		errs = append(errs, ValidationError{
			Field:   "References",
			Message: fmt.Sprintf("maximum %d references allowed", models.MaxReferences),
			Code:    "LIMIT_EXCEEDED",
		})
	}
	if p.Source == models.SourceReferral && len(p.References) == 0 {
		errs = append(errs, ValidationError{
			Field:   "References",
			Message: "at least one reference is required for referral applications",
			Code:    "REQUIRED_FIELD_MISSING",
		})
	}
	for i, ref := range p.References {
		if strings.TrimSpace(ref.Name) == "" || strings.TrimSpace(ref.Email) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("References[%d]", i),
				Message: fmt.Sprintf("reference %d: name and email are required", i+1),
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	if !models.KnownSource(p.Source) {
		errs = append(errs, ValidationError{
			Field:   "Source",
			Message: fmt.Sprintf("source %q is not one of the allowed options", p.Source),
			Code:    "INVALID_ENUM",
		})
	}

	errs = append(errs, validateCustomAnswers(p.CustomAnswers)...)

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateCustomAnswers(answers map[string]string) []ValidationError {
	if len(answers) == 0 {
		return nil
	}
	doc := make(map[string]interface{}, len(answers))
	for k, v := range answers {
		doc[k] = v
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(customAnswersSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return []ValidationError{{
			Field:   "CustomAnswers",
			Message: "custom answers could not be validated",
			Code:    "SCHEMA_ERROR",
		}}
	}
	var errs []ValidationError
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   "CustomAnswers." + desc.Field(),
			Message: desc.Description(),
			Code:    "SCHEMA_VIOLATION",
		})
	}
	return errs
}
