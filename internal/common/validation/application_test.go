// internal/common/validation/application_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careers-backend/internal/models"
)

func validPayload() models.ApplicationPayload {
	return models.ApplicationPayload{
		JobID:         "job-1",
		CandidateName: "Jordan Smith",
		DOB:           "1993-04-12",
		Email:         "jordan@example.com",
		Phone:         "+49123456789",
		ResumeURL:     "http://localhost:8080/api/storage/files/abc",
		Source:        models.SourceWebsite,
	}
}

func TestValidateApplication(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *models.ApplicationPayload)
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "valid payload",
			mutate:    func(p *models.ApplicationPayload) {},
			wantValid: true,
		},
		{
			name: "missing resume",
			mutate: func(p *models.ApplicationPayload) {
				p.ResumeURL = "   "
			},
			wantFields: []string{"ResumeURL"},
		},
		{
			name: "missing identity fields",
			mutate: func(p *models.ApplicationPayload) {
				p.CandidateName = ""
				p.Email = ""
				p.Phone = ""
				p.DOB = ""
			},
			wantFields: []string{"CandidateName", "Email", "Phone", "DOB"},
		},
		{
			name: "too many references",
			mutate: func(p *models.ApplicationPayload) {
				p.References = []models.Reference{
					{Name: "A", Email: "a@example.com"},
					{Name: "B", Email: "b@example.com"},
					{Name: "C", Email: "c@example.com"},
				}
			},
			wantFields: []string{"References"},
		},
		{
			name: "referral without references",
			mutate: func(p *models.ApplicationPayload) {
				p.Source = models.SourceReferral
			},
			wantFields: []string{"References"},
		},
		{
			name: "referral with a reference passes",
			mutate: func(p *models.ApplicationPayload) {
				p.Source = models.SourceReferral
				p.References = []models.Reference{{Name: "A", Email: "a@example.com"}}
			},
			wantValid: true,
		},
		{
			name: "reference missing email",
			mutate: func(p *models.ApplicationPayload) {
				p.References = []models.Reference{{Name: "A"}}
			},
			wantFields: []string{"References[0]"},
		},
		{
			name: "unknown source",
			mutate: func(p *models.ApplicationPayload) {
				p.Source = "Telepathy"
			},
			wantFields: []string{"Source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			result := ValidateApplication(payload)

			if tt.wantValid {
				assert.True(t, result.Valid)
				return
			}

			assert.False(t, result.Valid)
			gotFields := make([]string, 0, len(result.Errors))
			for _, e := range result.Errors {
				gotFields = append(gotFields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, gotFields)
		})
	}
}

func TestValidateApplication_ResumeErrorComesFirst(t *testing.T) {
	payload := validPayload()
	payload.ResumeURL = ""
	payload.CandidateName = ""

	result := ValidateApplication(payload)

	assert.False(t, result.Valid)
	assert.Equal(t, "ResumeURL", result.Errors[0].Field)
}

func TestValidateApplication_CustomAnswers(t *testing.T) {
	payload := validPayload()
	payload.CustomAnswers = map[string]string{
		"Why do you want this role?": "Because I like the work.",
	}
	assert.True(t, ValidateApplication(payload).Valid)
}
