// pkg/careers/intake_test.go
package careers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers-backend/internal/models"
	"careers-backend/pkg/notify"
)

// intakeBackend fakes the storage and intake endpoints and counts calls.
type intakeBackend struct {
	uploads    atomic.Int32
	resolves   atomic.Int32
	submits    atomic.Int32
	failUpload bool
	failURL    bool
	lastIdem   atomic.Value
}

func (b *intakeBackend) server(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/storage/upload-resume", func(w http.ResponseWriter, r *http.Request) {
		b.uploads.Add(1)
		if b.failUpload {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.StoredFile{ID: "file-1", Name: "resume.pdf"})
	})
	mux.HandleFunc("/api/storage/file-url/", func(w http.ResponseWriter, r *http.Request) {
		b.resolves.Add(1)
		if b.failURL {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "http://files.example.com/file-1"})
	})
	mux.HandleFunc("/api/careers/submitapplication", func(w http.ResponseWriter, r *http.Request) {
		b.submits.Add(1)
		b.lastIdem.Store(r.Header.Get("Idempotency-Key"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Application{ID: "app-1", ApplicationStatus: models.StatusPending})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newIntake(t *testing.T, b *intakeBackend) (*IntakeDraft, *notify.Center) {
	center := notify.NewCenter()
	client := NewClient(b.server(t).URL)
	return NewIntakeDraft(client, center), center
}

func fillIdentity(d *IntakeDraft) {
	d.Payload.CandidateName = "Jordan Smith"
	d.Payload.Email = "jordan@example.com"
	d.Payload.Phone = "+49123456789"
	d.Payload.DOB = "1993-04-12"
}

func TestIntakeDraft_AttachResume(t *testing.T) {
	backend := &intakeBackend{}
	draft, _ := newIntake(t, backend)

	ok := draft.AttachResume(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("pdf"))

	require.True(t, ok)
	assert.Equal(t, int32(1), backend.uploads.Load())
	assert.Equal(t, int32(1), backend.resolves.Load())
	assert.Equal(t, "http://files.example.com/file-1", draft.Payload.ResumeURL)
	assert.Equal(t, "resume.pdf", draft.Payload.ResumeFileName)
	assert.False(t, draft.Uploading())
}

func TestIntakeDraft_AttachResume_RejectsUnsupportedType(t *testing.T) {
	backend := &intakeBackend{}
	draft, center := newIntake(t, backend)

	ok := draft.AttachResume(context.Background(), "pic.png", "image/png", strings.NewReader("png"))

	assert.False(t, ok)
	assert.Equal(t, int32(0), backend.uploads.Load(), "a rejected type must not reach the network")
	assert.Empty(t, draft.Payload.ResumeURL)
	require.NotNil(t, center.Current())
	assert.Equal(t, notify.SeverityError, center.Current().Severity)
}

func TestIntakeDraft_AttachResume_UploadFailureRollsBack(t *testing.T) {
	backend := &intakeBackend{failUpload: true}
	draft, center := newIntake(t, backend)

	ok := draft.AttachResume(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("pdf"))

	assert.False(t, ok)
	assert.Empty(t, draft.Payload.ResumeURL)
	assert.Empty(t, draft.Payload.ResumeFileName)
	assert.False(t, draft.Uploading())
	require.NotNil(t, center.Current())
}

func TestIntakeDraft_AttachResume_ResolveFailureRollsBack(t *testing.T) {
	backend := &intakeBackend{failURL: true}
	draft, _ := newIntake(t, backend)

	ok := draft.AttachResume(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("pdf"))

	assert.False(t, ok)
	assert.Equal(t, int32(1), backend.uploads.Load())
	assert.Empty(t, draft.Payload.ResumeURL)
	assert.False(t, draft.Uploading())
}

func TestIntakeDraft_AddSkills(t *testing.T) {
	draft, _ := newIntake(t, &intakeBackend{})

	draft.AddSkills("Go, SQL , ,Kubernetes")
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, draft.Payload.Skills)

	draft.AddSkills("Docker")
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes", "Docker"}, draft.Payload.Skills, "adding must append, never replace")

	draft.AddSkills("   ")
	assert.Len(t, draft.Payload.Skills, 4, "blank input is a no-op")

	draft.RemoveSkill(1)
	assert.Equal(t, []string{"Go", "Kubernetes", "Docker"}, draft.Payload.Skills)
}

func TestIntakeDraft_References(t *testing.T) {
	draft, center := newIntake(t, &intakeBackend{})

	assert.False(t, draft.AddReference(models.Reference{Name: "No Email"}))
	assert.Empty(t, draft.Payload.References)

	assert.True(t, draft.AddReference(models.Reference{Name: "A", Email: "a@example.com"}))
	assert.True(t, draft.AddReference(models.Reference{Name: "B", Email: "b@example.com"}))

	center.Dismiss()
	assert.False(t, draft.AddReference(models.Reference{Name: "C", Email: "c@example.com"}), "the third reference is a rejected no-op")
	assert.Len(t, draft.Payload.References, 2)
	require.NotNil(t, center.Current())
	assert.Equal(t, notify.SeverityWarning, center.Current().Severity)

	draft.RemoveReference(0)
	require.Len(t, draft.Payload.References, 1)
	assert.Equal(t, "B", draft.Payload.References[0].Name)
}

func TestIntakeDraft_Submit_RequiresResumeFirst(t *testing.T) {
	backend := &intakeBackend{}
	draft, center := newIntake(t, backend)
	fillIdentity(draft)

	_, ok := draft.Submit(context.Background())

	assert.False(t, ok)
	assert.Equal(t, int32(0), backend.submits.Load(), "submission must abort before the network call")
	require.NotNil(t, center.Current())
	assert.Equal(t, "Please upload your resume", center.Current().Message)
}

func TestIntakeDraft_Submit_RequiresIdentityFields(t *testing.T) {
	backend := &intakeBackend{}
	draft, center := newIntake(t, backend)
	draft.Payload.ResumeURL = "http://files.example.com/file-1"

	_, ok := draft.Submit(context.Background())

	assert.False(t, ok)
	assert.Equal(t, int32(0), backend.submits.Load())
	assert.Equal(t, "Please enter your name", center.Current().Message)
}

func TestIntakeDraft_Submit_SendsIdempotencyKey(t *testing.T) {
	backend := &intakeBackend{}
	draft, center := newIntake(t, backend)
	fillIdentity(draft)
	draft.Payload.ResumeURL = "http://files.example.com/file-1"

	app, ok := draft.Submit(context.Background())

	require.True(t, ok)
	assert.Equal(t, "app-1", app.ID)
	key, _ := backend.lastIdem.Load().(string)
	assert.NotEmpty(t, key)
	assert.Equal(t, notify.SeveritySuccess, center.Current().Severity)
}
