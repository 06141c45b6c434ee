package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	RecruiterUC   domain.RecruiterUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *token.Service
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/api/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "UP"})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes carry a tighter per-client limit.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	// Recruiter-gated routes
	recruiter := protected.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin))

	// Admin-gated routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	NewAuthHandler(public, protected, admin, deps.AuthUC)
	NewCandidateHandler(protected, recruiter, deps.CandidateUC)
	NewRecruiterHandler(protected, admin, deps.RecruiterUC)
	NewJobHandler(protected, recruiter, deps.JobUC)
	NewApplicationHandler(protected, recruiter, deps.ApplicationUC)

	return r
}
