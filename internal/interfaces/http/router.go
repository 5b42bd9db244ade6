package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	auditapp "issuehub/internal/application/audit"
	appauth "issuehub/internal/application/auth"
	"issuehub/internal/application/authz"
	"issuehub/internal/application/issue/usecases"
	appproject "issuehub/internal/application/project"
	"issuehub/internal/infrastructure/auth"
	"issuehub/internal/infrastructure/config"
	"issuehub/internal/infrastructure/ratelimit"
	"issuehub/internal/infrastructure/repository"
	"issuehub/internal/interfaces/http/handlers"
	"issuehub/internal/interfaces/http/middleware"
	"issuehub/internal/shared/db"
	"issuehub/internal/shared/logger"
)

// Router wires repositories, services and use cases into the Gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	projectHandler *handlers.ProjectHandler
	issueHandler   *handlers.IssueHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc
}

// NewRouter builds the full dependency graph on top of the given database
// handle. The rate limiter backend is chosen by the caller so the same
// wiring serves both the memory and Redis setups.
func NewRouter(database *gorm.DB, cfg *config.Config, limiter ratelimit.RateLimiter, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	memberRepo := repository.NewMemberRepository(database)
	issueRepo := repository.NewIssueRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	auditRepo := repository.NewAuditLogRepository(database)

	authzEngine := authz.NewEngine(memberRepo)
	recorder := auditapp.NewRecorder(auditRepo, log)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	authService := appauth.NewService(userRepo, hasher, jwtService, recorder, log)
	projectService := appproject.NewService(projectRepo, memberRepo, userRepo, authzEngine, txManager, recorder, log)

	createIssueUC := usecases.NewCreateIssueUseCase(issueRepo, authzEngine, recorder, log)
	getIssueUC := usecases.NewGetIssueUseCase(issueRepo, authzEngine, log)
	listIssuesUC := usecases.NewListIssuesUseCase(issueRepo, authzEngine, log)
	updateIssueUC := usecases.NewUpdateIssueUseCase(issueRepo, authzEngine, recorder, log)
	deleteIssueUC := usecases.NewDeleteIssueUseCase(issueRepo, authzEngine, recorder, log)
	changeStatusUC := usecases.NewChangeStatusUseCase(issueRepo, authzEngine, recorder, log)
	addCommentUC := usecases.NewAddCommentUseCase(issueRepo, commentRepo, authzEngine, recorder, log)
	listCommentsUC := usecases.NewListCommentsUseCase(issueRepo, commentRepo, authzEngine, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authHandler:    handlers.NewAuthHandler(authService, log),
		userHandler:    handlers.NewUserHandler(authService, log),
		projectHandler: handlers.NewProjectHandler(projectService, log),
		issueHandler: handlers.NewIssueHandler(
			createIssueUC, getIssueUC, listIssuesUC, updateIssueUC,
			deleteIssueUC, changeStatusUC, addCommentUC, listCommentsUC,
			log,
		),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimit:      middleware.RateLimit(limiter, cfg.RateLimit.RequestsPerMinute, log),
	}
}

// SetupRoutes registers middleware and every HTTP route.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.rateLimit, r.authHandler.Signup)
		authGroup.POST("/login", r.rateLimit, r.authHandler.Login)
		authGroup.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("/search", r.rateLimit, r.userHandler.Search)
		users.GET("/:userID", r.userHandler.Get)
	}

	projects := api.Group("/projects")
	projects.Use(r.authMiddleware.RequireAuth())
	{
		projects.POST("", r.rateLimit, r.projectHandler.Create)
		projects.GET("", r.projectHandler.List)
		projects.GET("/:projectID/membership", r.projectHandler.GetMembership)
		projects.GET("/:projectID/members", r.projectHandler.ListMembers)
		projects.POST("/:projectID/members", r.rateLimit, r.projectHandler.AddMember)
		projects.DELETE("/:projectID/members/:userID", r.rateLimit, r.projectHandler.RemoveMember)

		projects.POST("/:projectID/issues", r.rateLimit, r.issueHandler.Create)
		projects.GET("/:projectID/issues", r.issueHandler.List)
		projects.GET("/:projectID/issues/:issueID", r.issueHandler.Get)
		projects.PATCH("/:projectID/issues/:issueID", r.rateLimit, r.issueHandler.Update)
		projects.DELETE("/:projectID/issues/:issueID", r.rateLimit, r.issueHandler.Delete)
		projects.PATCH("/:projectID/issues/:issueID/status", r.rateLimit, r.issueHandler.ChangeStatus)
		projects.POST("/:projectID/issues/:issueID/comments", r.rateLimit, r.issueHandler.AddComment)
		projects.GET("/:projectID/issues/:issueID/comments", r.issueHandler.ListComments)
	}

	issues := api.Group("/issues")
	issues.Use(r.authMiddleware.RequireAuth())
	{
		issues.GET("/:issueID", r.issueHandler.Get)
		issues.PATCH("/:issueID", r.rateLimit, r.issueHandler.Update)
		issues.DELETE("/:issueID", r.rateLimit, r.issueHandler.Delete)
		issues.PATCH("/:issueID/status", r.rateLimit, r.issueHandler.ChangeStatus)
		issues.GET("/:issueID/comments", r.issueHandler.ListComments)
		issues.POST("/:issueID/comments", r.rateLimit, r.issueHandler.AddComment)
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
