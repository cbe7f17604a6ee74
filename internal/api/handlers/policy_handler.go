package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/policy"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

type PolicyHandler struct {
	svc *application.PolicyService
}

func NewPolicyHandler(svc *application.PolicyService) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

// Chat godoc
// @Summary Ask the policy assistant a question
// @Tags policy
// @Security BearerAuth
// @Produce json
// @Param query query string true "Question"
// @Param employee_id query string false "Asking employee, adds their leave balance to the context"
// @Success 200 {object} policy.Answer
// @Failure 400 {object} response.ErrorResponse "Query is required"
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /policy/chat [get]
func (h *PolicyHandler) Chat(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	var employeeID *uuid.UUID
	if c.Query("employee_id") != "" {
		id, err := utils.ParseUUIDQuery(c, "employee_id")
		if err != nil {
			badRequest(c, "invalid employee_id")
			return
		}
		employeeID = &id
	}

	ans, err := h.svc.Chat(c.Request.Context(), uid, c.Query("query"), employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ans)
}

// Upload godoc
// @Summary Upload a policy PDF
// @Tags policy
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Policy PDF"
// @Success 201 {object} policy.Document
// @Failure 400 {object} response.ErrorResponse "Only PDF files are allowed"
// @Router /admin/policy/upload [post]
func (h *PolicyHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, "could not read file")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, application.MaxPolicySize+1))
	if err != nil {
		badRequest(c, "could not read file")
		return
	}

	doc, err := h.svc.Upload(c, fh.Filename, content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListFiles godoc
// @Summary List policy documents
// @Tags policy
// @Security BearerAuth
// @Produce json
// @Success 200 {array} policy.Document
// @Router /admin/policy/files [get]
func (h *PolicyHandler) ListFiles(c *gin.Context) {
	docs, err := h.svc.ListFiles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DeleteFile godoc
// @Summary Delete a policy document
// @Tags policy
// @Security BearerAuth
// @Produce json
// @Param filename path string true "File name"
// @Success 200 {object} response.StatusResponse
// @Failure 400 {object} response.ErrorResponse "Invalid filename"
// @Failure 404 {object} response.ErrorResponse "File not found"
// @Router /admin/policy/files/{filename} [delete]
func (h *PolicyHandler) DeleteFile(c *gin.Context) {
	name := c.Param("filename")
	if err := h.svc.DeleteFile(c, name); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: "success", Message: "Deleted " + name})
}

// ListLogs godoc
// @Summary Recent policy questions, newest first
// @Tags policy
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} policy.Log
// @Router /admin/policy/logs [get]
func (h *PolicyHandler) ListLogs(c *gin.Context) {
	logs, err := h.svc.ListLogs(utils.QueryInt(c, "limit", application.DefaultPolicyLogLimit))
	if err != nil {
		writeError(c, err)
		return
	}
	if logs == nil {
		logs = []policy.Log{}
	}
	c.JSON(http.StatusOK, logs)
}
