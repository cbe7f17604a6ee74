package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"gorm.io/gorm"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// --- Extractors ---

// OwnerExtractor resolves the staff user owning the addressed resource.
type OwnerExtractor func(c *gin.Context, repos *repository.Repos) (string, error)

var errMissingProject = errors.New("project_id is required")

// FromProjectIDParam reads the project id from a URL parameter.
func FromProjectIDParam(name string) OwnerExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		id, err := utils.ParseUUIDParam(c, name)
		if err != nil {
			return "", err
		}
		return repos.Project.GetOwnerIDByProjectID(id)
	}
}

// FromProjectIDQuery reads the project id from the query string.
func FromProjectIDQuery(name string) OwnerExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		if c.Query(name) == "" {
			return "", errMissingProject
		}
		id, err := utils.ParseUUIDQuery(c, name)
		if err != nil {
			return "", err
		}
		return repos.Project.GetOwnerIDByProjectID(id)
	}
}

// FromApplicantIDParam resolves the owner through the applicant's project.
func FromApplicantIDParam(name string) OwnerExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		id, err := utils.ParseUUIDParam(c, name)
		if err != nil {
			return "", err
		}
		a, err := repos.Applicant.GetApplicantByID(id)
		if err != nil {
			return "", err
		}
		return repos.Project.GetOwnerIDByProjectID(a.ProjectID)
	}
}

// --- Middleware Methods ---

// Owner lets the request through only when the caller owns the resource.
// Missing resources answer 404 so foreign ids are not disclosed.
func (a *Auth) Owner(extractor OwnerExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}

		owner, err := extractor(c, a.repos)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Not found"})
			} else {
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			}
			c.Abort()
			return
		}

		if owner != uid {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Not found"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalProjectOwner applies Owner only when the query carries name.
func (a *Auth) OptionalProjectOwner(name string) gin.HandlerFunc {
	owner := a.Owner(FromProjectIDQuery(name))
	return func(c *gin.Context) {
		if c.Query(name) == "" {
			c.Next()
			return
		}
		owner(c)
	}
}

// LoggingMiddleware logs method, path, status and latency per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware allows the configured front-end origins.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]bool, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}

	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-project-id", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

func parseProjectHeader(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.GetHeader("x-project-id")))
	return id, err == nil
}
