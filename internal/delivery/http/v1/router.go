package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-screening-backend/config"
	"go-screening-backend/internal/delivery/http/middleware"
	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
)

type RouterDeps struct {
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
	MatchingUC  domain.MatchingUsecase
	SchedulerUC domain.SchedulerUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewJobHandler(v1, deps.JobUC)
	NewCandidateHandler(v1, deps.CandidateUC, deps.Config.UploadDir)
	NewMatchHandler(v1, deps.MatchingUC, deps.SchedulerUC)
	NewDashboardHandler(v1, deps.MatchingUC)

	return r
}
