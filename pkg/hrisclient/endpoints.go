package hrisclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/linskybing/hris-cloud/pkg/pipeline"
)

func (c *Client) Pipeline(ctx context.Context) (*PipelineInfo, error) {
	var out PipelineInfo
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/pipeline", public: true}, nil, &out)
	return &out, err
}

// ---- organizations ----

func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var out []Organization
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/organizations"}, nil, &out)
	return out, err
}

func (c *Client) CreateOrganization(ctx context.Context, name string) (*Organization, error) {
	var out Organization
	in := map[string]string{"name": name}
	if err := c.doJSON(ctx, request{method: http.MethodPost, path: "/organizations"}, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- projects ----

// ListProjects returns the caller's active projects, optionally narrowed to
// one organization.
func (c *Client) ListProjects(ctx context.Context, orgID string) ([]Project, error) {
	q := url.Values{}
	if orgID != "" {
		q.Set("org_id", orgID)
	}
	var out []Project
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/projects", query: q}, nil, &out)
	return out, err
}

// GetProject reads the public job posting; no session is needed.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var out Project
	req := request{method: http.MethodGet, path: "/projects/" + url.PathEscape(id), public: true}
	if err := c.doJSON(ctx, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, in CreateProjectRequest) (*Project, error) {
	var out Project
	if err := c.doJSON(ctx, request{method: http.MethodPost, path: "/projects"}, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in UpdateProjectRequest) (*Project, error) {
	var out Project
	req := request{method: http.MethodPatch, path: "/projects/" + url.PathEscape(id)}
	if err := c.doJSON(ctx, req, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: "/projects/" + url.PathEscape(id)}, nil, nil)
}

func (c *Client) CreateAPIKey(ctx context.Context, projectID string) (*APIKey, error) {
	var out APIKey
	req := request{method: http.MethodPost, path: "/projects/" + url.PathEscape(projectID) + "/keys"}
	if err := c.doJSON(ctx, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- applicants ----

// ListApplicants returns a project's applicants ordered by score. view may
// be empty or one of the pipeline view names.
func (c *Client) ListApplicants(ctx context.Context, projectID, view string) ([]Applicant, error) {
	q := url.Values{"project_id": {projectID}}
	if view != "" {
		q.Set("view", view)
	}
	var out []Applicant
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/applicants", query: q}, nil, &out)
	return out, err
}

// ListAllApplicants returns every applicant across the caller's projects.
func (c *Client) ListAllApplicants(ctx context.Context) ([]Applicant, error) {
	var out []Applicant
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/applicants/all"}, nil, &out)
	return out, err
}

func (c *Client) Summary(ctx context.Context, projectID string) (pipeline.Counts, error) {
	var out pipeline.Counts
	q := url.Values{"project_id": {projectID}}
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/applicants/summary", query: q}, nil, &out)
	return out, err
}

// ExportApplicants downloads the XLSX report and the file name the server
// suggested for it.
func (c *Client) ExportApplicants(ctx context.Context, projectID string) ([]byte, string, error) {
	q := url.Values{"project_id": {projectID}}
	resp, err := c.send(ctx, request{method: http.MethodGet, path: "/applicants/export", query: q})
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	name := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		name = params["filename"]
	}
	return data, name, nil
}

func (c *Client) UpdateApplicantStatus(ctx context.Context, id string, status pipeline.Status) (*Applicant, error) {
	var out Applicant
	req := request{method: http.MethodPatch, path: "/applicants/" + url.PathEscape(id)}
	in := map[string]string{"status": string(status)}
	if err := c.doJSON(ctx, req, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyApplicant(ctx context.Context, id string, form pipeline.VerifyForm) (*HireResult, error) {
	var out HireResult
	req := request{method: http.MethodPost, path: "/applicants/" + url.PathEscape(id) + "/verify"}
	if err := c.doJSON(ctx, req, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteApplicant(ctx context.Context, id string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: "/applicants/" + url.PathEscape(id)}, nil, nil)
}

// Application is a public CV submission. Exactly one of APIKey or
// ProjectID identifies the position.
type Application struct {
	ProjectID string
	APIKey    string
	Name      string
	Email     string
	FileName  string
	CV        io.Reader
}

// Apply submits a CV. created is false when the server matched an earlier
// submission of the same file and returned that applicant instead.
func (c *Client) Apply(ctx context.Context, app Application) (a *Applicant, created bool, err error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", app.Name)
	_ = mw.WriteField("email", app.Email)
	fw, err := mw.CreateFormFile("cv", app.FileName)
	if err != nil {
		return nil, false, err
	}
	if _, err := io.Copy(fw, app.CV); err != nil {
		return nil, false, err
	}
	if err := mw.Close(); err != nil {
		return nil, false, err
	}

	header := http.Header{}
	if app.APIKey != "" {
		header.Set("x-api-key", app.APIKey)
	}
	if app.ProjectID != "" {
		header.Set("x-project-id", app.ProjectID)
	}
	resp, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        "/apply",
		body:        &buf,
		contentType: mw.FormDataContentType(),
		header:      header,
		public:      true,
	})
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	var out Applicant
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, false, err
	}
	return &out, resp.StatusCode == http.StatusCreated, nil
}

// ---- employees ----

// ListEmployees lists the roster of orgID, or of the default organization
// when orgID is empty.
func (c *Client) ListEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	q := url.Values{}
	if orgID != "" {
		q.Set("org_id", orgID)
	}
	var out []Employee
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/employees", query: q}, nil, &out)
	return out, err
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/employees/" + url.PathEscape(id)}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in CreateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, request{method: http.MethodPost, path: "/employees"}, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, in UpdateEmployeeRequest) (*Employee, error) {
	var out Employee
	req := request{method: http.MethodPatch, path: "/employees/" + url.PathEscape(id)}
	if err := c.doJSON(ctx, req, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: "/employees/" + url.PathEscape(id)}, nil, nil)
}

// ---- policy ----

func (c *Client) PolicyChat(ctx context.Context, query, employeeID string) (*PolicyAnswer, error) {
	q := url.Values{"query": {query}}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	var out PolicyAnswer
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/policy/chat", query: q}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadPolicy(ctx context.Context, fileName string, r io.Reader) (*PolicyDocument, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        "/admin/policy/upload",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out PolicyDocument
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPolicyFiles(ctx context.Context) ([]PolicyDocument, error) {
	var out []PolicyDocument
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/admin/policy/files"}, nil, &out)
	return out, err
}

func (c *Client) DeletePolicyFile(ctx context.Context, name string) error {
	req := request{method: http.MethodDelete, path: "/admin/policy/files/" + url.PathEscape(name)}
	return c.doJSON(ctx, req, nil, nil)
}

// PolicyLogs returns answered questions, newest first. limit <= 0 uses the
// server default.
func (c *Client) PolicyLogs(ctx context.Context, limit int) ([]PolicyLog, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []PolicyLog
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/admin/policy/logs", query: q}, nil, &out)
	return out, err
}

// ---- audit ----

func (c *Client) AuditLogs(ctx context.Context, f AuditQuery) ([]AuditLog, error) {
	q := url.Values{}
	if f.ResourceType != "" {
		q.Set("resource_type", f.ResourceType)
	}
	if f.ResourceID != "" {
		q.Set("resource_id", f.ResourceID)
	}
	if f.Action != "" {
		q.Set("action", f.Action)
	}
	if !f.Start.IsZero() {
		q.Set("start_time", f.Start.Format(time.RFC3339))
	}
	if !f.End.IsZero() {
		q.Set("end_time", f.End.Format(time.RFC3339))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	var out []AuditLog
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/audit/logs", query: q}, nil, &out)
	return out, err
}

// ApplicantHistory lists the recorded pipeline moves of one applicant,
// newest first.
func (c *Client) ApplicantHistory(ctx context.Context, applicantID string) ([]AuditLog, error) {
	return c.AuditLogs(ctx, AuditQuery{ResourceType: "applicant", ResourceID: applicantID})
}
