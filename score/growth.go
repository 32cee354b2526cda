package score

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sproutlog/sproutlog-api/reference"
	"github.com/sproutlog/sproutlog-api/schema"
)

var ErrNoMeasurements = fmt.Errorf("no measurements for any metric")

// GrowthService builds growth reports from a child's measurement
// history. The reference table is injected so callers and tests control
// the curves; the service itself holds no mutable state and is safe for
// concurrent use.
type GrowthService struct {
	table        reference.Provider
	lookbackDays int
}

// NewGrowthService creates a service over the given reference table.
// lookbackDays limits the trend window to the most recent span of
// measurements; zero means all-time.
func NewGrowthService(table reference.Provider, lookbackDays int) *GrowthService {
	return &GrowthService{
		table:        table,
		lookbackDays: lookbackDays,
	}
}

// BuildReport computes the latest percentile placement and the series
// trend for every metric that has measurements. Metrics with no data
// are omitted. It fails with ErrNoMeasurements only when every metric
// is empty; a partial report is a valid result, not an error.
func (s *GrowthService) BuildReport(childID string, sex schema.Sex, bySeries map[schema.GrowthMetric][]schema.Measurement) (*schema.GrowthReport, error) {
	report := &schema.GrowthReport{
		ID:          uuid.NewString(),
		ChildID:     childID,
		GeneratedAt: time.Now().UTC(),
		Metrics:     map[schema.GrowthMetric]schema.MetricReport{},
	}

	for _, metric := range schema.GrowthMetrics {
		series := bySeries[metric]
		if len(series) == 0 {
			continue
		}
		report.TotalMeasurements += len(series)

		latest := series[len(series)-1]
		percentile, err := ComputePercentile(latest, s.table)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"child":  childID,
				"metric": metric,
			}).Error("fail to compute percentile")
			return nil, err
		}
		if percentile.OutOfRange {
			log.WithFields(log.Fields{
				"child":  childID,
				"metric": metric,
				"age":    latest.AgeInDays,
			}).Warn("age outside reference table, percentile extrapolated from nearest anchor")
		}

		trend, err := AnalyzeTrend(metric, s.trendWindow(series))
		if err != nil {
			return nil, err
		}

		report.Metrics[metric] = schema.MetricReport{
			LatestValue:      latest.Value,
			LatestRecordedAt: latest.RecordedAt,
			Percentile:       *percentile,
			Trend:            trend,
		}
	}

	if report.TotalMeasurements == 0 {
		return nil, ErrNoMeasurements
	}

	return report, nil
}

// trendWindow cuts the series down to the configured lookback, counted
// back from the latest measurement.
func (s *GrowthService) trendWindow(series []schema.Measurement) []schema.Measurement {
	if s.lookbackDays <= 0 {
		return series
	}

	cutoff := series[len(series)-1].AgeInDays - s.lookbackDays
	for i, m := range series {
		if m.AgeInDays >= cutoff {
			return series[i:]
		}
	}
	return series
}
