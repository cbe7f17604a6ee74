package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/api/handlers"
	"github.com/linskybing/hris-cloud/internal/api/middleware"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) {
	h := handlers.New(svc)
	authMiddleware := middleware.NewAuth(repos)
	projectOwner := authMiddleware.Owner(middleware.FromProjectIDParam("id"))
	applicantOwner := authMiddleware.Owner(middleware.FromApplicantIDParam("id"))
	queryProjectOwner := authMiddleware.Owner(middleware.FromProjectIDQuery("project_id"))

	// --- public routes ---
	r.GET("/", handlers.Root)
	r.GET("/pipeline", handlers.Pipeline)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/projects/:id", h.Project.GetProjectByID)
	r.POST("/apply",
		middleware.ApplyRateLimit(config.ApplyLimitPerIP, config.ApplyLimitPerProject, config.ApplyLimitWindow),
		h.Applicant.Apply)

	// --- JWT-protected routes ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/applicants", authMiddleware.OptionalProjectOwner("project_id"), h.Stream.StreamApplicants)

		orgs := auth.Group("/organizations")
		{
			orgs.POST("", h.Organization.CreateOrganization)
			orgs.GET("", h.Organization.ListOrganizations)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.POST("", h.Project.CreateProject)
			projects.PATCH("/:id", projectOwner, h.Project.UpdateProject)
			projects.DELETE("/:id", projectOwner, h.Project.DeleteProject)
			projects.POST("/:id/keys", projectOwner, h.Project.CreateAPIKey)
		}

		applicants := auth.Group("/applicants")
		{
			applicants.GET("", authMiddleware.OptionalProjectOwner("project_id"), h.Applicant.ListApplicants)
			applicants.GET("/all", h.Applicant.ListAll)
			applicants.GET("/summary", queryProjectOwner, h.Applicant.Summary)
			applicants.GET("/export", queryProjectOwner, h.Applicant.Export)
			applicants.PATCH("/:id", applicantOwner, h.Applicant.UpdateStatus)
			applicants.DELETE("/:id", applicantOwner, h.Applicant.DeleteApplicant)
			applicants.POST("/:id/verify", applicantOwner, h.Applicant.Verify)
		}

		employees := auth.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.POST("", h.Employee.CreateEmployee)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.PATCH("/:id", h.Employee.UpdateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
		}

		auth.GET("/policy/chat", h.Policy.Chat)
		admin := auth.Group("/admin/policy")
		{
			admin.POST("/upload", h.Policy.Upload)
			admin.GET("/files", h.Policy.ListFiles)
			admin.DELETE("/files/:filename", h.Policy.DeleteFile)
			admin.GET("/logs", h.Policy.ListLogs)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}
	}
}
