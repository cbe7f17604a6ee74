package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

type EmployeeHandler struct {
	svc *application.EmployeeService
}

func NewEmployeeHandler(svc *application.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// ListEmployees godoc
// @Summary List employees of one of the caller's organizations
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param org_id query string false "Organization ID, defaults to the caller's first organization"
// @Success 200 {array} employee.Employee
// @Failure 400 {object} response.ErrorResponse "invalid org_id"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
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
	list, err := h.svc.ListEmployees(uid, orgID)
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []employee.Employee{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateEmployee godoc
// @Summary Add an employee manually
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body employee.CreateEmployeeDTO true "Employee"
// @Success 201 {object} employee.Employee
// @Failure 400 {object} response.ErrorResponse "Employee with this email already exists"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var input employee.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	e, err := h.svc.CreateEmployee(c, uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GetEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} employee.Employee
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid employee id")
		return
	}
	e, err := h.svc.GetEmployee(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param body body employee.UpdateEmployeeDTO true "Fields to change"
// @Success 200 {object} employee.Employee
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [patch]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid employee id")
		return
	}
	var input employee.UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	e, err := h.svc.UpdateEmployee(c, uid, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEmployee godoc
// @Summary Archive an employee
// @Tags employees
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid employee id")
		return
	}
	if err := h.svc.DeleteEmployee(c, uid, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
