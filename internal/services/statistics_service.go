package services

import (
	"gagyebu/internal/period"
	"gagyebu/internal/statistics"
)

// statisticsService resolves the requested period and delegates to the
// aggregation engine.
type statisticsService struct {
	aggregator *statistics.Aggregator
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(src statistics.Source) StatisticsServicer {
	return &statisticsService{aggregator: statistics.NewAggregator(src)}
}

// GetStatistics computes the snapshot for (user, kind, year, month).
// Period validation happens before any data access, so a monthly request
// without a month never reaches the source.
func (s *statisticsService) GetStatistics(userID uint, kind string, year int, month *int) (*statistics.Snapshot, error) {
	k, err := period.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	window, err := period.Resolve(k, year, month)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(userID, window)
}
