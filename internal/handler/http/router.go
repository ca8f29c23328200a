package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/handler/http/middleware"
	"github.com/talentforge/jobboard-service/internal/service"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Profiles      *service.ProfileService
	Companies     *service.CompanyService
	Jobs          *service.JobService
	Applications  *service.ApplicationService
	Engagements   *service.EngagementService
	Notifications *service.NotificationService
	Blog          *service.BlogService
	Tokens        middleware.TokenValidator
	DB            *pgxpool.Pool
	Logger        *zap.Logger
}

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware())
	router.Use(middleware.MetricsMiddleware())

	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	userHandler := NewUserHandler(deps.Users, deps.Logger)
	profileHandler := NewProfileHandler(deps.Profiles, deps.Logger)
	companyHandler := NewCompanyHandler(deps.Companies, deps.Logger)
	jobHandler := NewJobHandler(deps.Jobs, deps.Users, deps.Logger)
	applicationHandler := NewApplicationHandler(deps.Applications, deps.Logger)
	engagementHandler := NewEngagementHandler(deps.Engagements, deps.Logger)
	notificationHandler := NewNotificationHandler(deps.Notifications, deps.Logger)
	blogHandler := NewBlogHandler(deps.Blog, deps.Logger)
	healthHandler := NewHealthHandler(deps.DB)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", healthHandler.Health)
	router.GET("/readiness", healthHandler.Readiness)

	authRequired := middleware.AuthMiddleware(deps.Tokens, deps.Logger)
	authOptional := middleware.OptionalAuthMiddleware(deps.Tokens)
	seekerOnly := middleware.RequireRole(models.RoleJobSeeker)
	employerOnly := middleware.RequireRole(models.RoleEmployer)
	adminOnly := middleware.RequireRole(models.RoleSuperAdmin)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("/me", userHandler.Me)
			users.DELETE("/me", userHandler.DeleteMe)
		}

		profiles := api.Group("/profiles", authRequired, seekerOnly)
		{
			profiles.GET("/me", profileHandler.Get)
			profiles.PUT("/me", profileHandler.Update)
			profiles.POST("/me/resume", profileHandler.UploadResume)
			profiles.GET("/me/career", profileHandler.ListCareer)
			profiles.POST("/me/career", profileHandler.AddCareerEntry)
			profiles.DELETE("/me/career/:id", profileHandler.DeleteCareerEntry)
		}

		companies := api.Group("/companies")
		{
			companies.GET("/mine", authRequired, employerOnly, companyHandler.ListMine)
			companies.GET("/:id", companyHandler.Get)
			companies.POST("", authRequired, employerOnly, companyHandler.Create)
			companies.PUT("/:id", authRequired, employerOnly, companyHandler.Update)
			companies.POST("/:id/logo", authRequired, employerOnly, companyHandler.UploadLogo)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListPublic)
			jobs.GET("/mine", authRequired, employerOnly, jobHandler.ListMine)
			jobs.GET("/:id", authOptional, jobHandler.Get)
			jobs.POST("", authRequired, employerOnly, jobHandler.Create)
			jobs.PUT("/:id", authRequired, employerOnly, jobHandler.Update)
			jobs.DELETE("/:id", authRequired, jobHandler.Delete)

			jobs.POST("/:id/applications", authRequired, seekerOnly, applicationHandler.Apply)
			jobs.GET("/:id/applications", authRequired, employerOnly, applicationHandler.ListForJob)

			jobs.POST("/:id/engagements/:kind", authRequired, engagementHandler.Toggle)
			jobs.GET("/:id/comments", engagementHandler.ListComments)
			jobs.POST("/:id/comments", authRequired, engagementHandler.Comment)
		}

		applications := api.Group("/applications", authRequired)
		{
			applications.GET("/mine", seekerOnly, applicationHandler.ListMine)
			applications.PATCH("/:id/status", employerOnly, applicationHandler.UpdateStatus)
		}

		engagements := api.Group("/engagements", authRequired)
		{
			engagements.GET("/:kind/jobs", engagementHandler.ListEngagedJobs)
		}

		api.DELETE("/comments/:id", authRequired, engagementHandler.DeleteComment)

		notifications := api.Group("/notifications", authRequired)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.ListPublished)
			blog.GET("/:slug", blogHandler.GetBySlug)
		}

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/users", userHandler.List)
			admin.GET("/users/:id", userHandler.Get)
			admin.PATCH("/users/:id/active", userHandler.SetActive)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.PATCH("/companies/:id/approval", companyHandler.SetApproved)
			admin.PATCH("/jobs/:id/approval", jobHandler.SetApproved)

			admin.POST("/blog", blogHandler.Create)
			admin.PUT("/blog/:id", blogHandler.Update)
			admin.DELETE("/blog/:id", blogHandler.Delete)
		}
	}

	return router
}
