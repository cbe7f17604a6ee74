package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve the caller's audit logs filtered by resource, action and time range, with pagination support.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        resource_type query     string   false  "Resource type to filter" example("applicant")
// @Param        resource_id   query     string   false  "Resource id; with resource_type=applicant this is one applicant's pipeline history"
// @Param        action        query     string   false  "Action type to filter" example("reject")
// @Param        start_time    query     string   false  "Start time in RFC3339 format, e.g. 2023-01-01T00:00:00Z" example("2023-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time in RFC3339 format, e.g. 2023-02-01T00:00:00Z" example("2023-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max number of records to return (default 100, max 1000)" example(100)
// @Param        offset        query     int      false  "Offset for pagination (default 0)" example(0)
// @Success 	 200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var params repository.AuditQueryParams

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		params.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	var err error
	if params.Limit, err = strconv.Atoi(c.DefaultQuery("limit", "100")); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
		return
	}
	if params.Offset, err = strconv.Atoi(c.DefaultQuery("offset", "0")); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid offset"})
		return
	}

	logs, err := h.svc.QueryAuditLogs(uid, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
