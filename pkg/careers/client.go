// pkg/careers/client.go

// Package careers is the client SDK for the careers backend. It carries
// the interaction logic a front end needs: drafts with their guard
// rails, a single-slot notification center, and tagged results at the
// HTTP boundary.
package careers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
)

// ResultKind tags the outcome of a request so call sites can switch on
// it instead of probing loose error payloads.
type ResultKind string

const (
	KindOK         ResultKind = "ok"
	KindValidation ResultKind = "validation"
	KindNotFound   ResultKind = "not_found"
	KindAuth       ResultKind = "auth"
	KindConflict   ResultKind = "conflict"
	KindRateLimit  ResultKind = "rate_limited"
	KindTransport  ResultKind = "transport"
	KindServer     ResultKind = "server"
	// KindStale marks a list response superseded by a newer request.
	KindStale ResultKind = "stale"
)

// Result is the tagged outcome of one request.
type Result[T any] struct {
	OK       bool
	Value    T
	Kind     ResultKind
	Messages []string
}

func ok[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v, Kind: KindOK}
}

func fail[T any](kind ResultKind, messages ...string) Result[T] {
	return Result[T]{OK: false, Kind: kind, Messages: messages}
}

// apiError mirrors the backend's standard error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Client speaks the backend's REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  logger.Logger

	mu    sync.RWMutex
	token string

	// Monotonic generations guard list fetches against out-of-order
	// responses. A response carrying an older generation is discarded.
	jobListGen atomic.Uint64
	appListGen atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer credential used on staff routes.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// --- auth ---

// SignIn exchanges credentials for a token and installs it on success.
func (c *Client) SignIn(ctx context.Context, email, password string) Result[models.AuthResponse] {
	res := doJSON[models.AuthResponse](c, ctx, http.MethodPost, "/api/auth/signin", models.SignInPayload{Email: email, Password: password}, nil)
	if res.OK {
		c.SetToken(res.Value.Token)
	}
	return res
}

// SignUp registers a staff account and installs the returned token.
func (c *Client) SignUp(ctx context.Context, name, email, password string) Result[models.AuthResponse] {
	res := doJSON[models.AuthResponse](c, ctx, http.MethodPost, "/api/auth/signup", models.SignUpPayload{Name: name, Email: email, Password: password}, nil)
	if res.OK {
		c.SetToken(res.Value.Token)
	}
	return res
}

// --- jobs ---

// ListJobs fetches all postings. A response superseded by a newer
// ListJobs call is discarded; read failures are logged and yield the
// zero data set.
func (c *Client) ListJobs(ctx context.Context) Result[[]models.JobPost] {
	gen := c.jobListGen.Add(1)
	res := doJSON[[]models.JobPost](c, ctx, http.MethodGet, "/api/jobpost/getposts", nil, nil)
	if c.jobListGen.Load() != gen {
		return fail[[]models.JobPost](KindStale)
	}
	if !res.OK {
		c.logger.Warn("Job list fetch failed", map[string]interface{}{"kind": string(res.Kind)})
		res.Value = nil
	}
	return res
}

func (c *Client) GetJob(ctx context.Context, id string) Result[models.JobPost] {
	return doJSON[models.JobPost](c, ctx, http.MethodGet, "/api/jobpost/getpostid/"+id, nil, nil)
}

func (c *Client) createJob(ctx context.Context, form models.JobFormData) Result[models.JobPost] {
	return doJSON[models.JobPost](c, ctx, http.MethodPost, "/api/jobpost/createpost", form, nil)
}

func (c *Client) updateJob(ctx context.Context, id string, form models.JobFormData) Result[models.JobPost] {
	return doJSON[models.JobPost](c, ctx, http.MethodPut, "/api/jobpost/updatepost/"+id, form, nil)
}

func (c *Client) deleteJob(ctx context.Context, id string) Result[struct{}] {
	return doJSON[struct{}](c, ctx, http.MethodDelete, "/api/jobpost/deletepost/"+id, nil, nil)
}

// --- applications ---

// ListApplications fetches one review page. Stale responses are
// discarded the same way ListJobs discards them.
func (c *Client) ListApplications(ctx context.Context, page, limit int) Result[models.ApplicationList] {
	gen := c.appListGen.Add(1)
	path := fmt.Sprintf("/api/careers/Applicationlists?page=%d&limit=%d", page, limit)
	res := doJSON[models.ApplicationList](c, ctx, http.MethodGet, path, nil, nil)
	if c.appListGen.Load() != gen {
		return fail[models.ApplicationList](KindStale)
	}
	if !res.OK {
		c.logger.Warn("Application list fetch failed", map[string]interface{}{"kind": string(res.Kind)})
		res.Value = models.ApplicationList{}
	}
	return res
}

func (c *Client) submitApplication(ctx context.Context, payload models.ApplicationPayload, idempotencyKey string) Result[models.Application] {
	headers := map[string]string{"Idempotency-Key": idempotencyKey}
	return doJSON[models.Application](c, ctx, http.MethodPost, "/api/careers/submitapplication", payload, headers)
}

// UpdateApplicationStatus moves an application through the pipeline and
// invokes refresh exactly once after the call returns, regardless of
// outcome.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, refresh func()) Result[models.Application] {
	body := map[string]string{"status": string(status)}
	res := doJSON[models.Application](c, ctx, http.MethodPatch, "/api/careers/application/"+id+"/status", body, nil)
	if refresh != nil {
		refresh()
	}
	return res
}

// --- storage ---

func (c *Client) uploadResume(ctx context.Context, name, contentType string, r io.Reader) Result[models.StoredFile] {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="resume"; filename="%s"`, name)},
		"Content-Type":        {contentType},
	})
	if err != nil {
		return fail[models.StoredFile](KindTransport, err.Error())
	}
	if _, err := io.Copy(part, r); err != nil {
		return fail[models.StoredFile](KindTransport, err.Error())
	}
	if err := mw.Close(); err != nil {
		return fail[models.StoredFile](KindTransport, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/storage/upload-resume", &buf)
	if err != nil {
		return fail[models.StoredFile](KindTransport, err.Error())
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return send[models.StoredFile](c, req)
}

func (c *Client) resolveFileURL(ctx context.Context, fileID string) Result[string] {
	res := doJSON[struct {
		URL string `json:"url"`
	}](c, ctx, http.MethodGet, "/api/storage/file-url/"+fileID, nil, nil)
	if !res.OK {
		return Result[string]{OK: false, Kind: res.Kind, Messages: res.Messages}
	}
	return ok(res.Value.URL)
}

// --- transport plumbing ---

func doJSON[T any](c *Client, ctx context.Context, method, path string, body interface{}, headers map[string]string) Result[T] {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fail[T](KindTransport, err.Error())
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail[T](KindTransport, err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return send[T](c, req)
}

func send[T any](c *Client, req *http.Request) Result[T] {
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fail[T](KindTransport, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail[T](KindTransport, err.Error())
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var value T
		if len(raw) > 0 && resp.StatusCode != http.StatusNoContent {
			if err := json.Unmarshal(raw, &value); err != nil {
				return fail[T](KindTransport, err.Error())
			}
		}
		return ok(value)
	}

	kind := kindForStatus(resp.StatusCode)
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Message == "" {
		return fail[T](kind, fmt.Sprintf("request failed with status %d", resp.StatusCode))
	}

	messages := make([]string, 0, len(apiErr.Errors)+1)
	if len(apiErr.Errors) > 0 {
		for _, fe := range apiErr.Errors {
			messages = append(messages, fe.Message)
		}
	} else {
		messages = append(messages, apiErr.Message)
	}
	return fail[T](kind, messages...)
}

func kindForStatus(status int) ResultKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindServer
	}
}
