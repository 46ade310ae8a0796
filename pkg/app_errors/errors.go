package apperrors

import "errors"

var (
	ErrDataLoad        = errors.New("failed to load ticket data")
	ErrInvalidSchedule = errors.New("invalid ticket schedule")
	ErrReportNotCached = errors.New("report not cached")
	ErrInvalidInput    = errors.New("invalid input")
)
