package mocks

import (
	"context"

	"flight-ticket-stats/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReportCacheMock struct {
	mock.Mock
}

func NewReportCacheMock() *ReportCacheMock {
	return &ReportCacheMock{}
}

func (m *ReportCacheMock) Get(ctx context.Context, origin, destination string) (*model.Report, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *ReportCacheMock) Set(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
