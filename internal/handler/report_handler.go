package handler

import (
	"errors"
	"net/http"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/service"
	apperrors "flight-ticket-stats/pkg/app_errors"
	"flight-ticket-stats/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service      service.ReportService
	defaultRoute config.RouteConfig
}

func NewReportHandler(service service.ReportService, defaultRoute config.RouteConfig) *ReportHandler {
	return &ReportHandler{service: service, defaultRoute: defaultRoute}
}

func (h *ReportHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("reports", h.GetReport)
	}
}

// ReportQuery route codes, both optional
type ReportQuery struct {
	Origin      string `form:"origin" binding:"omitempty,alphanum"`
	Destination string `form:"destination" binding:"omitempty,alphanum"`
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	var query ReportQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	if query.Origin == "" {
		query.Origin = h.defaultRoute.Origin
	}
	if query.Destination == "" {
		query.Destination = h.defaultRoute.Destination
	}

	report, err := h.service.Build(c, query.Origin, query.Destination)
	if err != nil {
		h.handleError(c, err, "GetReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrInvalidSchedule):
		log.Warn("Invalid ticket schedule")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid ticket schedule"})
	case errors.Is(err, apperrors.ErrDataLoad):
		log.Error("Failed to load ticket data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ticket data"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
