package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/organization"
)

type OrganizationHandler struct {
	svc *application.OrganizationService
}

func NewOrganizationHandler(svc *application.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// CreateOrganization godoc
// @Summary Create an organization owned by the caller
// @Tags organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body organization.CreateOrganizationDTO true "Organization"
// @Success 201 {object} organization.Organization
// @Failure 400 {object} response.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var input organization.CreateOrganizationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	o, err := h.svc.CreateOrganization(c, uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// ListOrganizations godoc
// @Summary List the caller's organizations
// @Tags organizations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} organization.Organization
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	orgs, err := h.svc.ListOrganizations(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if orgs == nil {
		orgs = []organization.Organization{}
	}
	c.JSON(http.StatusOK, orgs)
}
