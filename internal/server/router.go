package server

import (
	"log/slog"
	"net/http"

	"text-summarizer/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgNoData           = "No data provided"
	msgInvalidJSON      = "Invalid JSON payload"
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
)

// NewRouter constructs a gin engine with the summarize and health routes.
func NewRouter(h *Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(requestLogger(log))
	r.Use(recovery(log))
	r.Use(cors())

	r.POST("/summarize", h.handleSummarize)
	r.POST("/api/summarize", h.handleSummarize)
	r.GET("/health", handleHealth)

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, domain.ErrorResponse{Error: msgMethodNotAllowed})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: msgNotFound})
	})

	return r
}

func (h *Handler) handleSummarize(c *gin.Context) {
	req, msg, ok := bindSummaryRequest(c)
	if !ok {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msg})
		return
	}

	resp, err := h.Summarize(c.Request.Context(), req)
	if err != nil {
		c.JSON(domain.StatusCode(err), domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindSummaryRequest accepts only a non-empty JSON object.
func bindSummaryRequest(c *gin.Context) (domain.SummaryRequest, string, bool) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		return domain.SummaryRequest{}, msgNoData, false
	}

	var fields map[string]any
	if err = binding.JSON.BindBody(body, &fields); err != nil || len(fields) == 0 {
		return domain.SummaryRequest{}, msgNoData, false
	}

	var req domain.SummaryRequest
	if err = binding.JSON.BindBody(body, &req); err != nil {
		return domain.SummaryRequest{}, msgInvalidJSON, false
	}

	// Defaults apply only to absent keys; an explicit "" or null is rejected
	// during validation.
	if _, ok := fields["input_type"]; !ok {
		req.InputType = domain.DefaultInputType
	}
	if _, ok := fields["summary_length"]; !ok {
		req.SummaryLength = domain.DefaultSummaryLength
	}

	return req, "", true
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:  "healthy",
		Service: domain.ServiceName,
	})
}
