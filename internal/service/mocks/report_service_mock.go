package mocks

import (
	"context"

	"flight-ticket-stats/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReportServiceMock struct {
	mock.Mock
}

func NewReportServiceMock() *ReportServiceMock {
	return &ReportServiceMock{}
}

func (m *ReportServiceMock) Build(ctx context.Context, origin, destination string) (*model.Report, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}
