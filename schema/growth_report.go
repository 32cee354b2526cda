package schema

import (
	"time"
)

// PercentileResult places one measurement on the reference curves.
//
// ZScore stays nil when the reference table carries no LMS distribution
// parameters: a banded table only supports percentile interpolation, and
// guessing a z-score from band positions would be misleading.
type PercentileResult struct {
	Metric     GrowthMetric `json:"metric"`
	Value      float64      `json:"value"`
	Unit       string       `json:"unit"`
	AgeInDays  int          `json:"age_in_days"`
	Percentile float64      `json:"percentile"`
	ZScore     *float64     `json:"z_score"`
	Band       string       `json:"band"`
	OutOfRange bool         `json:"out_of_range"`
}

type TrendClassification string

const (
	TrendAccelerating     TrendClassification = "accelerating"
	TrendStable           TrendClassification = "stable"
	TrendDeclining        TrendClassification = "declining"
	TrendInsufficientData TrendClassification = "insufficient_data"
)

type TrendConfidence string

const (
	ConfidenceLow    TrendConfidence = "low"
	ConfidenceMedium TrendConfidence = "medium"
	ConfidenceHigh   TrendConfidence = "high"
)

// TrendResult is the velocity classification of one metric series.
// Slope is nil when the series has fewer than two points.
type TrendResult struct {
	Metric         GrowthMetric        `json:"metric"`
	WindowStart    time.Time           `json:"window_start"`
	WindowEnd      time.Time           `json:"window_end"`
	Slope          *float64            `json:"slope"`
	Classification TrendClassification `json:"classification"`
	Confidence     TrendConfidence     `json:"confidence"`
	SampleCount    int                 `json:"sample_count"`
}

// MetricReport bundles the latest percentile placement and the series
// trend for one metric.
type MetricReport struct {
	LatestValue      float64          `json:"latest_value"`
	LatestRecordedAt time.Time        `json:"latest_recorded_at"`
	Percentile       PercentileResult `json:"percentile"`
	Trend            TrendResult      `json:"trend"`
}

// GrowthReport is the full analytics output for one child. Metrics with
// no measurements are absent from the map.
type GrowthReport struct {
	ID                string                        `json:"id"`
	ChildID           string                        `json:"child_id"`
	GeneratedAt       time.Time                     `json:"generated_at"`
	TotalMeasurements int                           `json:"total_measurements"`
	Metrics           map[GrowthMetric]MetricReport `json:"metrics"`
}
