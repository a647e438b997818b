// pkg/careers/jobdraft.go
package careers

import (
	"context"
	"sync"

	"careers-backend/internal/common/validation"
	"careers-backend/internal/models"
	"careers-backend/pkg/notify"
)

// JobDraft builds a job posting form. Every posting needs at least one
// location and at least one non-blank site, so removing the last entry
// of either list is refused with a warning instead of mutating the
// draft.
type JobDraft struct {
	Form   models.JobFormData
	center *notify.Center
}

func NewJobDraft(center *notify.Center) *JobDraft {
	return &JobDraft{
		Form: models.JobFormData{
			Status:    models.JobStatusActive,
			Locations: []models.Location{{}},
			Sites:     []string{""},
		},
		center: center,
	}
}

func (d *JobDraft) AddLocation() {
	d.Form.Locations = append(d.Form.Locations, models.Location{})
}

// RemoveLocation drops the location at i. The last remaining location
// cannot be removed.
func (d *JobDraft) RemoveLocation(i int) {
	if i < 0 || i >= len(d.Form.Locations) {
		return
	}
	if len(d.Form.Locations) == 1 {
		d.center.Warning("At least one location is required")
		return
	}
	d.Form.Locations = append(d.Form.Locations[:i], d.Form.Locations[i+1:]...)
}

func (d *JobDraft) AddSite() {
	d.Form.Sites = append(d.Form.Sites, "")
}

// RemoveSite drops the site at i. The last remaining site cannot be
// removed.
func (d *JobDraft) RemoveSite(i int) {
	if i < 0 || i >= len(d.Form.Sites) {
		return
	}
	if len(d.Form.Sites) == 1 {
		d.center.Warning("At least one posting site is required")
		return
	}
	d.Form.Sites = append(d.Form.Sites[:i], d.Form.Sites[i+1:]...)
}

// validate runs the strict rule table and surfaces every violation
// through the notification center. Returns false when the draft must
// not be sent.
func (d *JobDraft) validate() bool {
	result := validation.ValidateJobForm(d.Form, validation.ModeStrict)
	if result.Valid {
		return true
	}
	details := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		details = append(details, e.Message)
	}
	d.center.ErrorWithDetails("Please fix the highlighted fields", details)
	return false
}

// Create validates the draft and posts it. No network call happens on a
// validation failure.
func (d *JobDraft) Create(ctx context.Context, client *Client) (models.JobPost, bool) {
	if !d.validate() {
		return models.JobPost{}, false
	}

	res := client.createJob(ctx, d.Form)
	if !res.OK {
		d.surfaceFailure(res.Kind, res.Messages, "Failed to create job post")
		return models.JobPost{}, false
	}
	d.center.Success("Job post created")
	return res.Value, true
}

// Update validates the draft and sends it as a replacement for id.
func (d *JobDraft) Update(ctx context.Context, client *Client, id string) (models.JobPost, bool) {
	if !d.validate() {
		return models.JobPost{}, false
	}

	res := client.updateJob(ctx, id, d.Form)
	if !res.OK {
		d.surfaceFailure(res.Kind, res.Messages, "Failed to update job post")
		return models.JobPost{}, false
	}
	d.center.Success("Job post updated")
	return res.Value, true
}

func (d *JobDraft) surfaceFailure(kind ResultKind, messages []string, generic string) {
	if kind == KindValidation && len(messages) > 0 {
		d.center.ErrorWithDetails(generic, messages)
		return
	}
	d.center.Error(generic)
}

// JobBoard is the staff-side cached job list. Deleting a row removes it
// locally on success without a refetch, and an in-flight guard keeps a
// delete from being issued twice for the same id.
type JobBoard struct {
	client *Client
	center *notify.Center

	mu       sync.Mutex
	jobs     []models.JobPost
	deleting map[string]bool
}

func NewJobBoard(client *Client, center *notify.Center) *JobBoard {
	return &JobBoard{client: client, center: center, deleting: make(map[string]bool)}
}

// Refresh reloads the full list. Stale responses leave the cache as is.
func (b *JobBoard) Refresh(ctx context.Context) {
	res := b.client.ListJobs(ctx)
	if res.Kind == KindStale {
		return
	}
	b.mu.Lock()
	b.jobs = res.Value
	b.mu.Unlock()
}

// Jobs returns a snapshot of the cached list.
func (b *JobBoard) Jobs() []models.JobPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.JobPost, len(b.jobs))
	copy(out, b.jobs)
	return out
}

// Delete removes the posting and drops its cached row on success. A
// second delete for an id already in flight is a no-op.
func (b *JobBoard) Delete(ctx context.Context, id string) bool {
	b.mu.Lock()
	if b.deleting[id] {
		b.mu.Unlock()
		return false
	}
	b.deleting[id] = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.deleting, id)
		b.mu.Unlock()
	}()

	res := b.client.deleteJob(ctx, id)
	if !res.OK {
		b.center.Error("Failed to delete job post")
		return false
	}

	b.mu.Lock()
	for i, job := range b.jobs {
		if job.ID == id {
			b.jobs = append(b.jobs[:i], b.jobs[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	b.center.Success("Job post deleted")
	return true
}
