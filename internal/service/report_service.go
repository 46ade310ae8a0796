package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-ticket-stats/internal/cache"
	"flight-ticket-stats/internal/metrics"
	"flight-ticket-stats/internal/model"
	"flight-ticket-stats/internal/repository"
	"flight-ticket-stats/internal/stats"
	apperrors "flight-ticket-stats/pkg/app_errors"
	"flight-ticket-stats/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportService interface {
	Build(ctx context.Context, origin, destination string) (*model.Report, error)
}

type ReportServiceImpl struct {
	repo  repository.TicketRepository
	cache cache.ReportCache
	now   func() time.Time
}

// NewReportService builds a service that reads through reportCache when it
// is non-nil.
func NewReportService(repo repository.TicketRepository, reportCache cache.ReportCache) ReportService {
	return &ReportServiceImpl{
		repo:  repo,
		cache: reportCache,
		now:   time.Now,
	}
}

func (s *ReportServiceImpl) Build(ctx context.Context, origin, destination string) (*model.Report, error) {
	log := logger.WithComponent("service").With(
		zap.String("origin", origin),
		zap.String("destination", destination),
	)

	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", apperrors.ErrInvalidInput)
	}

	if cached := s.fromCache(ctx, log, origin, destination); cached != nil {
		return cached, nil
	}

	start := s.now()
	report, err := s.compute(ctx, origin, destination)
	metrics.ReportDuration.Observe(s.now().Sub(start).Seconds())
	if err != nil {
		metrics.ReportsBuilt.WithLabelValues(statusOf(err)).Inc()
		log.Error("Failed to build report", zap.Error(err))
		return nil, err
	}
	metrics.ReportsBuilt.WithLabelValues("ok").Inc()

	log.Info("Report built",
		zap.String("run_id", report.RunID.String()),
		zap.Int("tickets", report.TicketCount),
		zap.Int("carriers", len(report.MinFlightTimes)),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			log.Warn("Failed to cache report", zap.Error(err))
		}
	}

	return report, nil
}

func (s *ReportServiceImpl) compute(ctx context.Context, origin, destination string) (*model.Report, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := stats.FilterByRoute(tickets, origin, destination)

	minimums, err := stats.MinFlightTimeByCarrier(filtered)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		RunID:          uuid.New(),
		Origin:         origin,
		Destination:    destination,
		TicketCount:    len(filtered),
		MinFlightTimes: stats.SortedFlightTimes(minimums),
		Price:          stats.PriceStatistics(filtered),
		GeneratedAt:    s.now().UTC(),
	}, nil
}

func (s *ReportServiceImpl) fromCache(ctx context.Context, log *zap.Logger, origin, destination string) *model.Report {
	if s.cache == nil {
		return nil
	}

	report, err := s.cache.Get(ctx, origin, destination)
	switch {
	case err == nil:
		metrics.ReportCacheLookups.WithLabelValues("hit").Inc()
		log.Debug("Report served from cache", zap.String("run_id", report.RunID.String()))
		return report
	case errors.Is(err, apperrors.ErrReportNotCached):
		metrics.ReportCacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.ReportCacheLookups.WithLabelValues("error").Inc()
		log.Warn("Failed to read report cache", zap.Error(err))
	}
	return nil
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDataLoad):
		return "load_error"
	case errors.Is(err, apperrors.ErrInvalidSchedule):
		return "schedule_error"
	default:
		return "error"
	}
}
