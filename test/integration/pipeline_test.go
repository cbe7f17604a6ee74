//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/config/db"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, client *HTTPClient, name string) project.Project {
	t.Helper()
	resp, err := client.POST("/projects", map[string]string{"name": name, "template_id": "engineering"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var p project.Project
	require.NoError(t, resp.DecodeJSON(&p))
	return p
}

func apply(t *testing.T, headers map[string]string, name, email, cv string) *Response {
	t.Helper()
	public := NewHTTPClient(GetTestContext().Router, "")
	resp, err := public.POSTFile("/apply",
		map[string]string{"name": name, "email": email},
		"cv", "cv.pdf", []byte(cv), headers)
	require.NoError(t, err)
	return resp
}

func listApplicants(t *testing.T, client *HTTPClient, projectID, view string) []applicant.Applicant {
	t.Helper()
	q := map[string]string{"project_id": projectID}
	if view != "" {
		q["view"] = view
	}
	resp, err := client.GET("/applicants", q)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
	var list []applicant.Applicant
	require.NoError(t, resp.DecodeJSON(&list))
	return list
}

func setStatus(t *testing.T, client *HTTPClient, id string, status pipeline.Status) *Response {
	t.Helper()
	resp, err := client.PATCH("/applicants/"+id, map[string]string{"status": string(status)})
	require.NoError(t, err)
	return resp
}

func TestHiringPipeline_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	p := createProject(t, client, "Software Engineer")
	header := map[string]string{"x-project-id": p.ID.String()}

	resp := apply(t, header, "Jane Doe", "jane@x.com", "%PDF-1.4 jane doe resume")
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var jane applicant.Applicant
	require.NoError(t, resp.DecodeJSON(&jane))
	assert.Equal(t, pipeline.StatusProcessing, jane.Status)
	assert.Nil(t, jane.AIScore)
	id := jane.ID.String()

	t.Run("duplicate CV returns the same applicant", func(t *testing.T) {
		resp := apply(t, header, "Jane Doe", "jane@x.com", "%PDF-1.4 jane doe resume")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var again applicant.Applicant
		require.NoError(t, resp.DecodeJSON(&again))
		assert.Equal(t, jane.ID, again.ID)
	})

	t.Run("illegal jump is refused", func(t *testing.T) {
		resp := setStatus(t, client, id, pipeline.StatusInterviewApproved)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("move to interview is visible on next fetch", func(t *testing.T) {
		resp := setStatus(t, client, id, pipeline.StatusInterviewPending)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		list := listApplicants(t, client, p.ID.String(), pipeline.ViewInterview)
		require.Len(t, list, 1)
		assert.Equal(t, jane.ID, list[0].ID)
	})

	t.Run("approve", func(t *testing.T) {
		resp := setStatus(t, client, id, pipeline.StatusInterviewApproved)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		assert.Len(t, listApplicants(t, client, p.ID.String(), pipeline.ViewVerification), 1)
	})

	t.Run("verify hires and creates the employee", func(t *testing.T) {
		resp, err := client.POST("/applicants/"+id+"/verify", map[string]any{
			"department":      "Engineering",
			"role":            "SWE",
			"join_date":       "2025-01-01",
			"leave_remaining": 12,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var hire response.HireResponse
		require.NoError(t, resp.DecodeJSON(&hire))
		assert.NotEmpty(t, hire.EmployeeID)

		hired := listApplicants(t, client, p.ID.String(), pipeline.ViewHired)
		require.Len(t, hired, 1)
		assert.Equal(t, pipeline.StatusHired, hired[0].Status)

		resp, err = client.GET("/employees")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var staff []employee.Employee
		require.NoError(t, resp.DecodeJSON(&staff))
		found := false
		for _, e := range staff {
			if e.Email == "jane@x.com" {
				found = true
				assert.Equal(t, "Engineering", e.Department)
				assert.Equal(t, 12, e.LeaveRemaining)
				require.NotNil(t, e.ApplicantID)
				assert.Equal(t, jane.ID, *e.ApplicantID)
			}
		}
		assert.True(t, found, "employee record for jane@x.com")
	})

	t.Run("hired is terminal", func(t *testing.T) {
		resp := setStatus(t, client, id, pipeline.StatusRejected)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("pipeline history lists committed moves only", func(t *testing.T) {
		resp, err := client.GET("/audit/logs", map[string]string{"resource_type": "applicant", "resource_id": id})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var history []audit.AuditLog
		require.NoError(t, resp.DecodeJSON(&history))

		actions := make([]string, 0, len(history))
		for _, h := range history {
			assert.Equal(t, id, h.ResourceID)
			actions = append(actions, h.Action)
		}
		assert.Equal(t, []string{"verify", "approve", "move_to_interview"}, actions)
	})
}

func TestApplicantViews_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	p := createProject(t, client, "Data Analyst")
	header := map[string]string{"x-project-id": p.ID.String()}

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		resp := apply(t, header, fmt.Sprintf("Candidate %d", i), fmt.Sprintf("c%d@x.com", i), fmt.Sprintf("%%PDF-1.4 candidate %d", i))
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		var a applicant.Applicant
		require.NoError(t, resp.DecodeJSON(&a))
		ids = append(ids, a.ID.String())
	}
	require.Len(t, listApplicants(t, client, p.ID.String(), pipeline.ViewInbox), 3)

	t.Run("summary counts", func(t *testing.T) {
		resp, err := client.GET("/applicants/summary", map[string]string{"project_id": p.ID.String()})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var counts pipeline.Counts
		require.NoError(t, resp.DecodeJSON(&counts))
		assert.Equal(t, 3, counts.Total)
		assert.Equal(t, 3, counts.Inbox)
		assert.Zero(t, counts.Priority, "unscored applicants are never priority")
	})

	t.Run("deleted applicant leaves every view", func(t *testing.T) {
		resp, err := client.DELETE("/applicants/" + ids[0])
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		inbox := listApplicants(t, client, p.ID.String(), pipeline.ViewInbox)
		assert.Len(t, inbox, 2)
		for _, a := range inbox {
			assert.NotEqual(t, ids[0], a.ID.String())
		}
	})

	t.Run("rejected applicant leaves the inbox", func(t *testing.T) {
		resp := setStatus(t, client, ids[1], pipeline.StatusRejected)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		assert.Len(t, listApplicants(t, client, p.ID.String(), pipeline.ViewInbox), 1)
	})

	t.Run("export downloads a workbook", func(t *testing.T) {
		resp, err := client.GET("/applicants/export", map[string]string{"project_id": p.ID.String()})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Headers.Get("Content-Disposition"), ".xlsx")
		assert.Equal(t, "PK", string(resp.Body[:2]))
	})

	t.Run("other owners cannot see or move applicants", func(t *testing.T) {
		other := NewHTTPClient(ctx.Router, ctx.OtherToken)
		resp := setStatus(t, other, ids[2], pipeline.StatusRejected)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err := other.GET("/applicants", map[string]string{"project_id": p.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProjectLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	p := createProject(t, client, "Product Designer")

	t.Run("public posting carries the organization name", func(t *testing.T) {
		public := NewHTTPClient(ctx.Router, "")
		resp, err := public.GET("/projects/" + p.ID.String())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got project.Project
		require.NoError(t, resp.DecodeJSON(&got))
		assert.NotEmpty(t, got.OrgName)
	})

	t.Run("api key submissions", func(t *testing.T) {
		resp, err := client.POST("/projects/"+p.ID.String()+"/keys", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		var key response.KeyResponse
		require.NoError(t, resp.DecodeJSON(&key))
		require.NotEmpty(t, key.KeyValue)

		resp = apply(t, map[string]string{"x-api-key": key.KeyValue}, "Sam Lee", "sam@x.com", "%PDF-1.4 sam")
		assert.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

		resp = apply(t, map[string]string{"x-api-key": key.KeyValue + "x"}, "Sam Lee", "sam@x.com", "%PDF-1.4 sam again")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("closed position refuses applications", func(t *testing.T) {
		resp, err := client.PATCH("/projects/"+p.ID.String(), map[string]any{"is_active": false})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		resp = apply(t, map[string]string{"x-project-id": p.ID.String()}, "Late Applicant", "late@x.com", "%PDF-1.4 late")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, application.ErrPositionClosed.Error(), resp.GetErrorMessage())
	})

	t.Run("archive hides the posting", func(t *testing.T) {
		resp, err := client.DELETE("/projects/" + p.ID.String())
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, err = client.GET("/projects/" + p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLegacyStatusMigration_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	p := createProject(t, client, "Support Engineer")

	resp := apply(t, map[string]string{"x-project-id": p.ID.String()}, "Old Timer", "old@x.com", "%PDF-1.4 legacy")
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var a applicant.Applicant
	require.NoError(t, resp.DecodeJSON(&a))

	require.NoError(t, db.DB.Exec("UPDATE applicants SET status = 'approved' WHERE id = ?", a.ID).Error)

	report, err := application.MigrateLegacyStatuses(ctx.Repos.Applicant, false)
	require.NoError(t, err)
	assert.Zero(t, report.After["approved"])

	got, err := ctx.Repos.Applicant.GetApplicantByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StatusInterviewApproved, got.Status)
}

func TestSecondOrganizationHire_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.OwnerToken)

	resp, err := client.GET("/employees")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

	resp, err = client.POST("/organizations", map[string]string{"name": "Acme Labs"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var labs struct {
		ID string `json:"id"`
	}
	require.NoError(t, resp.DecodeJSON(&labs))

	resp, err = client.POST("/projects", map[string]string{"org_id": labs.ID, "name": "Lab Technician", "template_id": "lab"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var p project.Project
	require.NoError(t, resp.DecodeJSON(&p))
	assert.Equal(t, labs.ID, p.OrgID.String())

	resp = apply(t, map[string]string{"x-project-id": p.ID.String()}, "Lab Tech", "lab.tech@x.com", "%PDF-1.4 lab tech resume")
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	var a applicant.Applicant
	require.NoError(t, resp.DecodeJSON(&a))
	id := a.ID.String()

	require.Equal(t, http.StatusOK, setStatus(t, client, id, pipeline.StatusInterviewPending).StatusCode)
	require.Equal(t, http.StatusOK, setStatus(t, client, id, pipeline.StatusInterviewApproved).StatusCode)
	resp, err = client.POST("/applicants/"+id+"/verify", map[string]any{
		"department": "Research",
		"role":       "Technician",
		"join_date":  "2025-02-01",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

	roster := func(q ...map[string]string) []employee.Employee {
		resp, err := client.GET("/employees", q...)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var staff []employee.Employee
		require.NoError(t, resp.DecodeJSON(&staff))
		return staff
	}
	has := func(staff []employee.Employee, email string) bool {
		for _, e := range staff {
			if e.Email == email {
				return true
			}
		}
		return false
	}

	assert.True(t, has(roster(map[string]string{"org_id": labs.ID}), "lab.tech@x.com"))
	assert.False(t, has(roster(), "lab.tech@x.com"))

	resp, err = client.POST("/employees", map[string]string{"org_id": labs.ID, "name": "Lab Tech", "email": "lab.tech@x.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	other := NewHTTPClient(ctx.Router, ctx.OtherToken)
	resp, err = other.GET("/employees", map[string]string{"org_id": labs.ID})
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}
