package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	cacheMocks "flight-ticket-stats/internal/cache/mocks"
	"flight-ticket-stats/internal/model"
	repoMocks "flight-ticket-stats/internal/repository/mocks"
	"flight-ticket-stats/internal/service"
	apperrors "flight-ticket-stats/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleTickets() []*model.Ticket {
	return []*model.Ticket{
		{Origin: "VVO", Destination: "TLV", Carrier: "SU", DepartureDate: "12.05.18", DepartureTime: "6:35", ArrivalDate: "12.05.18", ArrivalTime: "15:30", Price: 12400},
		{Origin: "VVO", Destination: "TLV", Carrier: "SU", DepartureDate: "13.05.18", DepartureTime: "8:00", ArrivalDate: "13.05.18", ArrivalTime: "14:00", Price: 13000},
		{Origin: "LRN", Destination: "TLV", Carrier: "TK", DepartureDate: "12.05.18", DepartureTime: "6:35", ArrivalDate: "12.05.18", ArrivalTime: "8:00", Price: 1},
		{Origin: "VVO", Destination: "TLV", Carrier: "S7", DepartureDate: "12.05.18", DepartureTime: "17:20", ArrivalDate: "12.05.18", ArrivalTime: "23:50", Price: 12650},
	}
}

func TestReportService_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - without cache", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportService := service.NewReportService(repo, nil)

		repo.On("List", ctx).Return(sampleTickets(), nil).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, report.RunID)
		assert.Equal(t, "VVO", report.Origin)
		assert.Equal(t, "TLV", report.Destination)
		assert.Equal(t, 3, report.TicketCount)
		assert.Equal(t, []model.CarrierFlightTime{
			{Carrier: "S7", Minutes: 390},
			{Carrier: "SU", Minutes: 360},
		}, report.MinFlightTimes)
		assert.InDelta(t, 12683.33, report.Price.Average, 0.005)
		assert.Equal(t, 12650.0, report.Price.Median)
		assert.InDelta(t, 33.33, report.Price.Difference, 0.005)
		assert.False(t, report.GeneratedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Success - route with no tickets", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportService := service.NewReportService(repo, nil)

		repo.On("List", ctx).Return(sampleTickets(), nil).Once()

		report, err := reportService.Build(ctx, "AAA", "BBB")

		require.NoError(t, err)
		assert.Equal(t, 0, report.TicketCount)
		assert.Empty(t, report.MinFlightTimes)
		assert.Equal(t, model.PriceStats{}, report.Price)
		repo.AssertExpectations(t)
	})

	t.Run("Success - cache miss stores report", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportCache := cacheMocks.NewReportCacheMock()
		reportService := service.NewReportService(repo, reportCache)

		reportCache.On("Get", ctx, "VVO", "TLV").Return(nil, apperrors.ErrReportNotCached).Once()
		repo.On("List", ctx).Return(sampleTickets(), nil).Once()
		reportCache.On("Set", ctx, mock.MatchedBy(func(r *model.Report) bool {
			return r.Origin == "VVO" && r.Destination == "TLV" && r.TicketCount == 3
		})).Return(nil).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.NoError(t, err)
		assert.Equal(t, 3, report.TicketCount)
		repo.AssertExpectations(t)
		reportCache.AssertExpectations(t)
	})

	t.Run("Success - cache hit skips repository", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportCache := cacheMocks.NewReportCacheMock()
		reportService := service.NewReportService(repo, reportCache)

		cached := &model.Report{RunID: uuid.New(), Origin: "VVO", Destination: "TLV", TicketCount: 7}
		reportCache.On("Get", ctx, "VVO", "TLV").Return(cached, nil).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.NoError(t, err)
		assert.Same(t, cached, report)
		repo.AssertNotCalled(t, "List", mock.Anything)
		reportCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("Success - cache errors are ignored", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportCache := cacheMocks.NewReportCacheMock()
		reportService := service.NewReportService(repo, reportCache)

		reportCache.On("Get", ctx, "VVO", "TLV").Return(nil, errors.New("redis down")).Once()
		repo.On("List", ctx).Return(sampleTickets(), nil).Once()
		reportCache.On("Set", ctx, mock.Anything).Return(errors.New("redis down")).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.NoError(t, err)
		assert.Equal(t, 3, report.TicketCount)
		repo.AssertExpectations(t)
		reportCache.AssertExpectations(t)
	})

	t.Run("Failed - data load error", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportService := service.NewReportService(repo, nil)

		loadErr := fmt.Errorf("%w: read tickets.json: no such file", apperrors.ErrDataLoad)
		repo.On("List", ctx).Return(nil, loadErr).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, apperrors.ErrDataLoad)
		assert.Contains(t, err.Error(), "no such file")
		repo.AssertExpectations(t)
	})

	t.Run("Failed - invalid schedule on the route", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportCache := cacheMocks.NewReportCacheMock()
		reportService := service.NewReportService(repo, reportCache)

		tickets := append(sampleTickets(), &model.Ticket{
			Origin: "VVO", Destination: "TLV", Carrier: "SU",
			DepartureDate: "12/05/18", DepartureTime: "6:35", ArrivalDate: "12.05.18", ArrivalTime: "15:30",
		})
		reportCache.On("Get", ctx, "VVO", "TLV").Return(nil, apperrors.ErrReportNotCached).Once()
		repo.On("List", ctx).Return(tickets, nil).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSchedule)
		reportCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("Success - invalid schedule off the route is not parsed", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportService := service.NewReportService(repo, nil)

		tickets := append(sampleTickets(), &model.Ticket{
			Origin: "LED", Destination: "TLV", Carrier: "SU",
			DepartureDate: "bad", DepartureTime: "bad",
		})
		repo.On("List", ctx).Return(tickets, nil).Once()

		report, err := reportService.Build(ctx, "VVO", "TLV")

		require.NoError(t, err)
		assert.Equal(t, 3, report.TicketCount)
	})

	t.Run("Failed - empty route code", func(t *testing.T) {
		repo := repoMocks.NewTicketRepositoryMock()
		reportService := service.NewReportService(repo, nil)

		report, err := reportService.Build(ctx, "", "TLV")

		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})
}
