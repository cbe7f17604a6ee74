package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List the caller's job postings
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param org_id query string false "Organization ID"
// @Success 200 {array} project.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	var orgID *uuid.UUID
	if c.Query("org_id") != "" {
		id, err := utils.ParseUUIDQuery(c, "org_id")
		if err != nil {
			badRequest(c, "invalid org_id")
			return
		}
		orgID = &id
	}

	projects, err := h.svc.ListProjects(uid, orgID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(projects) == 0 {
		c.JSON(http.StatusOK, []project.Project{})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get a job posting (public, used by the career page)
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	p, err := h.svc.GetProject(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a job posting
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body project.CreateProjectDTO true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 403 {object} response.ErrorResponse "Not authorized"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svc.CreateProject(c, uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Update a job posting; org_id is immutable
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body project.UpdateProjectDTO true "Fields to change"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svc.UpdateProject(c, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Archive a job posting and its applicants
// @Tags projects
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	if err := h.svc.DeleteProject(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateAPIKey godoc
// @Summary Issue an API key for public submissions; the value is shown once
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 201 {object} response.KeyResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/keys [post]
func (h *ProjectHandler) CreateAPIKey(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}

	k, plain, err := h.svc.CreateAPIKey(c, id, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.KeyResponse{
		ID:        k.ID.String(),
		ProjectID: k.ProjectID.String(),
		KeyValue:  plain,
	})
}
