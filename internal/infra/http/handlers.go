package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technohippy/aiid/internal/domain"
	"github.com/technohippy/aiid/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type promoteRequest struct {
	IsIncidentReport bool    `json:"is_incident_report"`
	IncidentIDs      []int32 `json:"incident_ids"`
}

type promoteResponse struct {
	IncidentIDs  []int32 `json:"incident_ids"`
	ReportNumber int32   `json:"report_number"`
}

type linkRequest struct {
	IncidentIDs   []int32 `json:"incident_ids"`
	ReportNumbers []int32 `json:"report_numbers"`
}

func (s *Server) handlePromoteSubmission(c *gin.Context) {
	if s.promote == nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "store not configured")
		return
	}
	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	resp, err := s.promote.Execute(c.Request.Context(), usecase.PromoteSubmissionRequest{
		SubmissionID:     c.Param("submission_id"),
		IsIncidentReport: req.IsIncidentReport,
		IncidentIDs:      req.IncidentIDs,
	})
	if err != nil {
		s.writePromoteError(c, err)
		return
	}

	incidentIDs := resp.IncidentIDs
	if incidentIDs == nil {
		incidentIDs = []int32{}
	}
	c.JSON(http.StatusOK, promoteResponse{
		IncidentIDs:  incidentIDs,
		ReportNumber: resp.ReportNumber,
	})
}

func (s *Server) writePromoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "submission not found")
	case errors.Is(err, domain.ErrEmbeddingMismatch):
		writeError(c, http.StatusConflict, "EMBEDDING_MISMATCH", "embedding dimensions do not match")
	default:
		s.log.Error("promotion failed", "error", err)
		writeError(c, http.StatusInternalServerError, "INTERNAL", "promotion failed")
	}
}

func (s *Server) handleLinkReports(c *gin.Context) {
	if s.linker == nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "store not configured")
		return
	}
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := s.linker.Execute(c.Request.Context(), usecase.LinkReportsRequest{
		IncidentIDs:   req.IncidentIDs,
		ReportNumbers: req.ReportNumbers,
	}); err != nil {
		s.log.Error("linking failed", "error", err)
		writeError(c, http.StatusInternalServerError, "INTERNAL", "linking failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleProcessNotifications(c *gin.Context) {
	if s.notifications == nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "store not configured")
		return
	}
	processed, err := s.notifications.Execute(c.Request.Context())
	if err != nil {
		s.log.Error("notification processing failed", "error", err, "processed", processed)
		writeError(c, http.StatusInternalServerError, "INTERNAL", "notification processing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}
