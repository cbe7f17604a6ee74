package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/response"
)

// PipelineResponse describes the applicant state machine to clients.
type PipelineResponse struct {
	Statuses               []pipeline.Status     `json:"statuses"`
	Transitions            []pipeline.Transition `json:"transitions"`
	PriorityScoreThreshold int                   `json:"priority_score_threshold"`
	Views                  []string              `json:"views"`
}

// Root godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "HRIS Cloud API is running"})
}

// Pipeline godoc
// @Summary Applicant pipeline transition table
// @Tags meta
// @Produce json
// @Success 200 {object} PipelineResponse
// @Router /pipeline [get]
func Pipeline(c *gin.Context) {
	c.JSON(http.StatusOK, PipelineResponse{
		Statuses:               pipeline.Statuses(),
		Transitions:            pipeline.Table(),
		PriorityScoreThreshold: pipeline.PriorityScoreThreshold,
		Views: []string{
			pipeline.ViewPriority,
			pipeline.ViewInbox,
			pipeline.ViewInterview,
			pipeline.ViewVerification,
			pipeline.ViewHired,
		},
	})
}
