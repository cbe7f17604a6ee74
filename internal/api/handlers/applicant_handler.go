package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicantHandler struct {
	svc *application.ApplicantService
}

func NewApplicantHandler(svc *application.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// ListApplicants godoc
// @Summary List applicants of a posting, best AI score first
// @Description Without project_id the caller's applicants across all postings are returned, newest first.
// @Tags applicants
// @Security BearerAuth
// @Produce json
// @Param project_id query string false "Project ID"
// @Param view query string false "priority, inbox, interview, verification or hired"
// @Success 200 {array} applicant.Applicant
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applicants [get]
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	if c.Query("project_id") == "" {
		h.ListAll(c)
		return
	}
	projectID, err := utils.ParseUUIDQuery(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project_id")
		return
	}

	list, err := h.svc.ListApplicants(projectID, c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListAll godoc
// @Summary List every applicant across the caller's postings
// @Tags applicants
// @Security BearerAuth
// @Produce json
// @Success 200 {array} applicant.Applicant
// @Router /applicants/all [get]
func (h *ApplicantHandler) ListAll(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.svc.ListAll(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []applicant.Applicant{}
	}
	c.JSON(http.StatusOK, list)
}

// Summary godoc
// @Summary Dashboard counts for a posting
// @Tags applicants
// @Security BearerAuth
// @Produce json
// @Param project_id query string true "Project ID"
// @Success 200 {object} pipeline.Counts
// @Router /applicants/summary [get]
func (h *ApplicantHandler) Summary(c *gin.Context) {
	projectID, err := utils.ParseUUIDQuery(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project_id")
		return
	}
	counts, err := h.svc.Summary(projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Export godoc
// @Summary Download a posting's applicants as an XLSX report
// @Tags applicants
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param project_id query string true "Project ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Router /applicants/export [get]
func (h *ApplicantHandler) Export(c *gin.Context) {
	projectID, err := utils.ParseUUIDQuery(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project_id")
		return
	}
	data, name, err := h.svc.Export(projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// UpdateStatus godoc
// @Summary Move an applicant along the pipeline
// @Tags applicants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Applicant ID"
// @Param body body applicant.UpdateStatusDTO true "Target status"
// @Success 200 {object} applicant.Applicant
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Failure 404 {object} response.ErrorResponse "Applicant not found"
// @Failure 409 {object} response.ErrorResponse "Transition not allowed"
// @Router /applicants/{id} [patch]
func (h *ApplicantHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid applicant id")
		return
	}
	var input applicant.UpdateStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	a, err := h.svc.Transition(c, id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Verify godoc
// @Summary Verify an interview-approved applicant and hire them
// @Tags applicants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Applicant ID"
// @Param body body pipeline.VerifyForm true "Employee data"
// @Success 200 {object} response.HireResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/verify [post]
func (h *ApplicantHandler) Verify(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid applicant id")
		return
	}
	var form pipeline.VerifyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err.Error())
		return
	}

	e, err := h.svc.Verify(c, id, form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.HireResponse{
		Status:     "success",
		Message:    "Candidate verified and hired",
		EmployeeID: e.ID.String(),
	})
}

// DeleteApplicant godoc
// @Summary Archive an applicant
// @Tags applicants
// @Security BearerAuth
// @Param id path string true "Applicant ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [delete]
func (h *ApplicantHandler) DeleteApplicant(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid applicant id")
		return
	}
	if err := h.svc.DeleteApplicant(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Apply godoc
// @Summary Submit a CV to a job posting (public)
// @Description The posting is chosen by the x-api-key header or, failing that, x-project-id.
// @Tags apply
// @Accept multipart/form-data
// @Produce json
// @Param x-api-key header string false "Project API key"
// @Param x-project-id header string false "Project ID"
// @Param name formData string true "Candidate name"
// @Param email formData string true "Candidate e-mail"
// @Param cv formData file true "CV (PDF or DOCX)"
// @Success 201 {object} applicant.Applicant "New application"
// @Success 200 {object} applicant.Applicant "Duplicate CV, existing application"
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Invalid API Key"
// @Failure 403 {object} response.ErrorResponse "Position closed"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 429 {object} response.ErrorResponse "Rate limit exceeded"
// @Router /apply [post]
func (h *ApplicantHandler) Apply(c *gin.Context) {
	var form applicant.ApplyForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err.Error())
		return
	}
	fh, err := c.FormFile("cv")
	if err != nil {
		badRequest(c, "CV file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, "Could not read CV file")
		return
	}
	defer f.Close()

	// one byte past the limit so oversized files fail validation
	content, err := io.ReadAll(io.LimitReader(f, config.MaxCVSize+1))
	if err != nil {
		badRequest(c, "Could not read CV file")
		return
	}

	target := application.ApplyTarget{
		APIKey:    strings.TrimSpace(c.GetHeader("x-api-key")),
		ProjectID: c.GetHeader("x-project-id"),
	}
	a, created, err := h.svc.Apply(c.Request.Context(), target, applicant.Submission{
		Name:     form.Name,
		Email:    form.Email,
		FileName: fh.Filename,
		Content:  content,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, a)
		return
	}
	c.JSON(http.StatusOK, a)
}
