package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/api/handlers"
	"github.com/linskybing/hris-cloud/internal/api/middleware"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/internal/repository/mock"
	"github.com/linskybing/hris-cloud/internal/storage"
	"github.com/linskybing/hris-cloud/internal/testutils"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubReader struct{ text string }

func (r stubReader) Read(string, []byte) (string, error) { return r.text, nil }

type apiFixture struct {
	router   *gin.Engine
	apps     *mock.MockApplicantRepo
	projects *mock.MockProjectRepo
	audits   *mock.MockAuditRepo
	token    string
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	config.JwtSecret = "handler-test-secret"
	config.Issuer = ""
	config.ApplyLimitPerIP = 1000
	config.ApplyLimitPerProject = 1000
	config.ApplyLimitWindow = time.Hour
	middleware.Init()
	utils.LogAuditWithConsole = func(*gin.Context, string, string, string, interface{}, interface{}, string, repository.AuditRepo) {}

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := &apiFixture{
		apps:     mock.NewMockApplicantRepo(ctrl),
		projects: mock.NewMockProjectRepo(ctrl),
		audits:   mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Applicant:    f.apps,
		Project:      f.projects,
		Employee:     mock.NewMockEmployeeRepo(ctrl),
		Organization: mock.NewMockOrganizationRepo(ctrl),
		Policy:       mock.NewMockPolicyRepo(ctrl),
		Audit:        f.audits,
	}
	svc := application.New(repos, storage.NewMemoryStore())
	svc.Applicant.Reader = stubReader{text: "Go engineer with Postgres experience"}
	f.router = testutils.SetupRouter(svc, repos)

	tok, err := middleware.GenerateToken("owner-1", "hr@acme.io", time.Hour)
	require.NoError(t, err)
	f.token = tok
	return f
}

func (f *apiFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

// ownApplicant registers an applicant in a project owned by the caller.
func (f *apiFixture) ownApplicant(status pipeline.Status) applicant.Applicant {
	a := applicant.Applicant{ID: uuid.New(), ProjectID: uuid.New(), Name: "Jane Doe", Email: "jane@x.io", Status: status}
	f.apps.EXPECT().GetApplicantByID(a.ID).Return(a, nil).AnyTimes()
	f.projects.EXPECT().GetOwnerIDByProjectID(a.ProjectID).Return("owner-1", nil).AnyTimes()
	f.projects.EXPECT().GetProjectByID(a.ProjectID).Return(project.Project{ID: a.ProjectID, Name: "Backend Engineer"}, nil).AnyTimes()
	return a
}

func TestPublicMeta(t *testing.T) {
	f := setupAPI(t)

	w := f.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/pipeline", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info handlers.PipelineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, pipeline.Table(), info.Transitions)
	assert.Equal(t, 70, info.PriorityScoreThreshold)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("legal transition", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)
		f.apps.EXPECT().UpdateStatus(a.ID, pipeline.StatusProcessing, pipeline.StatusInterviewPending).Return(nil)
		f.audits.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "interview_pending"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got applicant.Applicant
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, pipeline.StatusInterviewPending, got.Status)
	})

	t.Run("failed audit write fails the move", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)
		f.apps.EXPECT().UpdateStatus(a.ID, pipeline.StatusProcessing, pipeline.StatusInterviewPending).Return(nil)
		f.audits.EXPECT().CreateAuditLog(gomock.Any()).Return(errors.New("disk full"))

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "interview_pending"})
		assert.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	})

	t.Run("terminal state is 409", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusHired)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "rejected"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, errorOf(t, w), "terminal")
	})

	t.Run("illegal transition is 409", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "interview_approved"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("hiring goes through verify", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusInterviewApproved)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "hired"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, application.ErrUseVerifyEndpoint.Error(), errorOf(t, w))
	})

	t.Run("legacy status is rejected", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "approved"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("concurrent change is 409", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)
		f.apps.EXPECT().UpdateStatus(a.ID, pipeline.StatusProcessing, pipeline.StatusRejected).Return(repository.ErrStatusChanged)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{"status": "rejected"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, application.ErrStatusConflict.Error(), errorOf(t, w))
	})

	t.Run("missing body is 400", func(t *testing.T) {
		f := setupAPI(t)
		a := f.ownApplicant(pipeline.StatusProcessing)

		w := f.do(http.MethodPatch, "/applicants/"+a.ID.String(), map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no session is 401", func(t *testing.T) {
		f := setupAPI(t)
		f.token = ""
		w := f.do(http.MethodPatch, "/applicants/"+uuid.NewString(), map[string]string{"status": "rejected"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestVerifyValidatesForm(t *testing.T) {
	f := setupAPI(t)
	a := f.ownApplicant(pipeline.StatusInterviewApproved)

	w := f.do(http.MethodPost, "/applicants/"+a.ID.String()+"/verify", map[string]any{
		"department": "Engineering", "role": "Backend", "join_date": "01/11/2026",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, pipeline.ErrJoinDateFormat.Error(), errorOf(t, w))
}

func TestListApplicantsUnknownView(t *testing.T) {
	f := setupAPI(t)
	projectID := uuid.New()
	f.projects.EXPECT().GetOwnerIDByProjectID(projectID).Return("owner-1", nil).AnyTimes()
	f.apps.EXPECT().ListApplicantsByProject(projectID).Return([]applicant.Applicant{}, nil)

	w := f.do(http.MethodGet, "/applicants?project_id="+projectID.String()+"&view=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func applyRequest(t *testing.T, projectID string, withCV bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Jane Doe")
	_ = mw.WriteField("email", "jane@example.com")
	if withCV {
		fw, err := mw.CreateFormFile("cv", "jane.pdf")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("%PDF-1.4 jane"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/apply", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-project-id", projectID)
	return req
}

func TestApply(t *testing.T) {
	t.Run("missing cv is 400", func(t *testing.T) {
		f := setupAPI(t)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, applyRequest(t, uuid.NewString(), false))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed position is 403", func(t *testing.T) {
		f := setupAPI(t)
		id := uuid.New()
		f.projects.EXPECT().GetProjectByID(id).Return(project.Project{ID: id, IsActive: false}, nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, applyRequest(t, id.String(), true))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Position closed", errorOf(t, w))
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		f := setupAPI(t)
		id := uuid.New()
		f.projects.EXPECT().GetProjectByID(id).Return(project.Project{}, gorm.ErrRecordNotFound)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, applyRequest(t, id.String(), true))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("new submission is 201, repeat is 200", func(t *testing.T) {
		f := setupAPI(t)
		id := uuid.New()
		var created applicant.Applicant
		f.projects.EXPECT().GetProjectByID(id).Return(project.Project{ID: id, IsActive: true}, nil).Times(2)
		gomock.InOrder(
			f.apps.EXPECT().FindByProjectAndHash(id, gomock.Any()).Return(applicant.Applicant{}, gorm.ErrRecordNotFound),
			f.apps.EXPECT().FindByProjectAndHash(id, gomock.Any()).DoAndReturn(func(uuid.UUID, string) (applicant.Applicant, error) {
				return created, nil
			}),
		)
		f.apps.EXPECT().CreateApplicant(gomock.Any()).DoAndReturn(func(a *applicant.Applicant) error {
			a.ID = uuid.New()
			created = *a
			return nil
		})

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, applyRequest(t, id.String(), true))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var first applicant.Applicant
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
		assert.Equal(t, pipeline.StatusProcessing, first.Status)
		assert.Nil(t, first.AIScore)

		w = httptest.NewRecorder()
		f.router.ServeHTTP(w, applyRequest(t, id.String(), true))
		require.Equal(t, http.StatusOK, w.Code)
		var second applicant.Applicant
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
		assert.Equal(t, first.ID, second.ID)
	})
}
