package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	uploadDir   string
}

func NewCandidateHandler(rg *gin.RouterGroup, candidateUC domain.CandidateUsecase, uploadDir string) {
	handler := &CandidateHandler{candidateUC: candidateUC, uploadDir: uploadDir}

	candidates := rg.Group("/candidates")
	{
		candidates.POST("", handler.Ingest)
		candidates.POST("/batch", handler.IngestBatch)
		candidates.GET("/:id", handler.GetDetails)
	}
}

type IngestCandidateRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	ResumePath string `json:"resume_path" binding:"required"`
}

// Ingest accepts either a multipart resume upload or a JSON body pointing
// at a resume already on disk.
func (h *CandidateHandler) Ingest(c *gin.Context) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/") {
		h.ingestUpload(c)
		return
	}

	var req IngestCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	id, err := h.candidateUC.IngestResume(c.Request.Context(), req.ResumePath, req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate ingested", gin.H{"candidate_id": id})
}

func (h *CandidateHandler) ingestUpload(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.Error(apperror.BadRequest("name is required"))
		return
	}
	email := c.PostForm("email")

	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("resume file is required"))
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.Error(err)
		return
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	dest := filepath.Join(h.uploadDir, fmt.Sprintf("%s_%s%s", base, uuid.NewString(), ext))
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.Error(err)
		return
	}

	id, err := h.candidateUC.IngestResume(c.Request.Context(), dest, name, email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate ingested", gin.H{
		"candidate_id": id,
		"resume_path":  dest,
	})
}

type IngestBatchRequest struct {
	Directory string `json:"directory" binding:"required"`
}

func (h *CandidateHandler) IngestBatch(c *gin.Context) {
	var req IngestBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	report, err := h.candidateUC.IngestDirectory(c.Request.Context(), req.Directory)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume directory processed", report)
}

func (h *CandidateHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid candidate id"))
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}
