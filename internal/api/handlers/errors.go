package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/cvtext"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

// statusFor maps application errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *cvtext.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrApplicantNotFound),
		errors.Is(err, application.ErrEmployeeNotFound),
		errors.Is(err, application.ErrPolicyNotFound),
		errors.Is(err, application.ErrOrganizationNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrPositionClosed),
		errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, pipeline.ErrTerminalState),
		errors.Is(err, pipeline.ErrIllegalTransition),
		errors.Is(err, application.ErrStatusConflict),
		errors.Is(err, application.ErrUseVerifyEndpoint):
		return http.StatusConflict
	case errors.Is(err, pipeline.ErrUnknownStatus),
		errors.Is(err, application.ErrUnknownView),
		errors.Is(err, application.ErrNotInterviewApproved),
		errors.Is(err, application.ErrDuplicateEmployee),
		errors.Is(err, application.ErrInvalidJoinDate),
		errors.Is(err, application.ErrInvalidFileName),
		errors.Is(err, application.ErrOnlyPDF),
		errors.Is(err, application.ErrQueryRequired),
		errors.Is(err, pipeline.ErrDepartmentRequired),
		errors.Is(err, pipeline.ErrRoleRequired),
		errors.Is(err, pipeline.ErrJoinDateRequired),
		errors.Is(err, pipeline.ErrJoinDateFormat),
		errors.Is(err, pipeline.ErrNegativeLeave):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "Internal server error"
	}
	if errors.Is(err, application.ErrNotInterviewApproved) {
		msg = application.ErrNotInterviewApproved.Error()
	}
	c.JSON(code, response.ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
}

// currentUser writes 401 and returns false when no staff session is present.
func currentUser(c *gin.Context) (string, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return uid, true
}
