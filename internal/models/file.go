// internal/models/file.go
package models

import "time"

// StoredFile is the metadata record behind an opaque resume file id.
// The id is handed back by the upload endpoint; the URL is resolved in
// a second call and must stay durable.
type StoredFile struct {
	ID          string    `json:"fileId"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Path        string    `json:"-"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AllowedResumeTypes is the MIME allow-list for resume uploads.
var AllowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}
