// pkg/careers/intake.go
package careers

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"careers-backend/internal/models"
	"careers-backend/pkg/notify"
)

// IntakeDraft is one application-in-progress. It lives for a single
// session and is never persisted client side.
type IntakeDraft struct {
	Payload models.ApplicationPayload

	client *Client
	center *notify.Center

	uploading bool
	// idempotencyKey is reused across retries of a failed submit and
	// regenerated only after an attempt completes.
	idempotencyKey string
}

func NewIntakeDraft(client *Client, center *notify.Center) *IntakeDraft {
	return &IntakeDraft{
		Payload: models.ApplicationPayload{
			Source: models.SourceWebsite,
		},
		client: client,
		center: center,
	}
}

// Uploading reports whether a resume upload is in flight.
func (d *IntakeDraft) Uploading() bool {
	return d.uploading
}

// AttachResume uploads the file and resolves its durable URL onto the
// draft. Disallowed types are rejected without touching draft state,
// and only one upload may be in flight at a time. Either stage failing
// clears the selected file and leaves ResumeURL empty.
func (d *IntakeDraft) AttachResume(ctx context.Context, name, contentType string, r io.Reader) bool {
	if !models.AllowedResumeTypes[contentType] {
		d.center.Error("Please upload PDF or Word document only")
		return false
	}
	if d.uploading {
		d.center.Warning("A resume upload is already in progress")
		return false
	}

	d.uploading = true
	defer func() { d.uploading = false }()

	uploaded := d.client.uploadResume(ctx, name, contentType, r)
	if !uploaded.OK {
		d.Payload.ResumeFileName = ""
		d.Payload.ResumeURL = ""
		d.center.Error("Resume upload failed, please try again")
		return false
	}

	resolved := d.client.resolveFileURL(ctx, uploaded.Value.ID)
	if !resolved.OK {
		d.Payload.ResumeFileName = ""
		d.Payload.ResumeURL = ""
		d.center.Error("Could not resolve the uploaded resume, please try again")
		return false
	}

	d.Payload.ResumeFileName = name
	d.Payload.ResumeURL = resolved.Value
	return true
}

// AddSkills splits a comma-separated input, trims each entry, drops
// empties and appends the rest. Blank input is a no-op.
func (d *IntakeDraft) AddSkills(input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	for _, part := range strings.Split(input, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			d.Payload.Skills = append(d.Payload.Skills, skill)
		}
	}
}

// RemoveSkill drops the skill at i.
func (d *IntakeDraft) RemoveSkill(i int) {
	if i < 0 || i >= len(d.Payload.Skills) {
		return
	}
	d.Payload.Skills = append(d.Payload.Skills[:i], d.Payload.Skills[i+1:]...)
}

// AddReference appends a reference. Name and email are required, and
// the list is capped at two entries; a third add is a rejected no-op.
func (d *IntakeDraft) AddReference(ref models.Reference) bool {
	if strings.TrimSpace(ref.Name) == "" || strings.TrimSpace(ref.Email) == "" {
		d.center.Warning("Reference name and email are required")
		return false
	}
	if len(d.Payload.References) >= models.MaxReferences {
		d.center.Warning("You can add at most two references")
		return false
	}
	d.Payload.References = append(d.Payload.References, ref)
	return true
}

// RemoveReference drops the reference at i.
func (d *IntakeDraft) RemoveReference(i int) {
	if i < 0 || i >= len(d.Payload.References) {
		return
	}
	d.Payload.References = append(d.Payload.References[:i], d.Payload.References[i+1:]...)
}

// Submit sends the draft. The resume must be uploaded first and the
// identity fields filled in; a failed send leaves the idempotency key
// in place so a retry cannot create a duplicate.
func (d *IntakeDraft) Submit(ctx context.Context) (models.Application, bool) {
	if d.Payload.ResumeURL == "" {
		d.center.Error("Please upload your resume")
		return models.Application{}, false
	}
	for _, check := range []struct {
		value   string
		message string
	}{
		{d.Payload.CandidateName, "Please enter your name"},
		{d.Payload.Email, "Please enter your email"},
		{d.Payload.Phone, "Please enter your phone number"},
		{d.Payload.DOB, "Please enter your date of birth"},
	} {
		if strings.TrimSpace(check.value) == "" {
			d.center.Error(check.message)
			return models.Application{}, false
		}
	}

	if d.idempotencyKey == "" {
		d.idempotencyKey = uuid.New().String()
	}

	res := d.client.submitApplication(ctx, d.Payload, d.idempotencyKey)
	if !res.OK {
		if res.Kind == KindValidation && len(res.Messages) > 0 {
			d.center.ErrorWithDetails("Your application could not be submitted", res.Messages)
		} else {
			d.center.Error("Failed to submit application, please try again")
		}
		return models.Application{}, false
	}

	// The attempt completed, so a later submit gets a fresh key.
	d.idempotencyKey = ""
	d.center.Success("Application submitted successfully")
	return res.Value, true
}
