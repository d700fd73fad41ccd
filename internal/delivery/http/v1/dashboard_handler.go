package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
)

type DashboardHandler struct {
	matchingUC domain.MatchingUsecase
}

func NewDashboardHandler(rg *gin.RouterGroup, matchingUC domain.MatchingUsecase) {
	handler := &DashboardHandler{matchingUC: matchingUC}

	rg.GET("/dashboard/matches", handler.TopMatches)
	rg.POST("/jobs/:id/dashboard/publish", handler.Publish)
}

func (h *DashboardHandler) TopMatches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.matchingUC.TopMatches(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Top matches retrieved", rows)
}

func (h *DashboardHandler) Publish(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return
	}

	if err := h.matchingUC.PublishDashboard(c.Request.Context(), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard snapshot published", nil)
}
