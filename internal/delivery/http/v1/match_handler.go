package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
)

type MatchHandler struct {
	matchingUC  domain.MatchingUsecase
	schedulerUC domain.SchedulerUsecase
}

func NewMatchHandler(rg *gin.RouterGroup, matchingUC domain.MatchingUsecase, schedulerUC domain.SchedulerUsecase) {
	handler := &MatchHandler{matchingUC: matchingUC, schedulerUC: schedulerUC}

	jobs := rg.Group("/jobs/:id")
	{
		jobs.POST("/candidates/:candidateID/score", handler.Score)
		jobs.POST("/candidates/:candidateID/recompute", handler.Recompute)
		jobs.GET("/shortlist", handler.Shortlist)
		jobs.POST("/shortlist/invite", handler.Invite)
	}
}

func (h *MatchHandler) Score(c *gin.Context) {
	jobID, candidateID, ok := h.pairParams(c)
	if !ok {
		return
	}

	score, err := h.matchingUC.ScoreMatch(c.Request.Context(), jobID, candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Match scored", gin.H{"score": score})
}

func (h *MatchHandler) Recompute(c *gin.Context) {
	jobID, candidateID, ok := h.pairParams(c)
	if !ok {
		return
	}

	score, err := h.matchingUC.RecomputeMatch(c.Request.Context(), jobID, candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Match recomputed", gin.H{"score": score})
}

func (h *MatchHandler) Shortlist(c *gin.Context) {
	jobID, ok := h.jobParam(c)
	if !ok {
		return
	}

	entries, report, err := h.matchingUC.Shortlist(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Shortlist computed", gin.H{
		"shortlist": entries,
		"report":    report,
	})
}

func (h *MatchHandler) Invite(c *gin.Context) {
	jobID, ok := h.jobParam(c)
	if !ok {
		return
	}

	report, err := h.schedulerUC.InviteShortlisted(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview invites dispatched", report)
}

func (h *MatchHandler) jobParam(c *gin.Context) (int64, bool) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return 0, false
	}
	return jobID, true
}

func (h *MatchHandler) pairParams(c *gin.Context) (int64, int64, bool) {
	jobID, ok := h.jobParam(c)
	if !ok {
		return 0, 0, false
	}
	candidateID, err := strconv.ParseInt(c.Param("candidateID"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid candidate id"))
		return 0, 0, false
	}
	return jobID, candidateID, true
}
