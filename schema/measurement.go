package schema

import (
	"time"
)

type GrowthMetric string

const (
	MetricHeight            GrowthMetric = "height"
	MetricWeight            GrowthMetric = "weight"
	MetricHeadCircumference GrowthMetric = "head_circumference"
)

// GrowthMetrics lists every supported metric. Code that switches over
// GrowthMetric must handle all of them.
var GrowthMetrics = []GrowthMetric{
	MetricHeight,
	MetricWeight,
	MetricHeadCircumference,
}

// Unit returns the measurement unit a metric is recorded in.
func (m GrowthMetric) Unit() string {
	switch m {
	case MetricWeight:
		return "kg"
	case MetricHeight, MetricHeadCircumference:
		return "cm"
	}
	return ""
}

// Measurement is one validated growth record. The persistence layer
// guarantees a positive value and a derived age before it reaches the
// analytics core; measurements are never mutated here.
type Measurement struct {
	ChildID    string       `json:"child_id"`
	Metric     GrowthMetric `json:"metric"`
	Value      float64      `json:"value"`
	Unit       string       `json:"unit"`
	RecordedAt time.Time    `json:"recorded_at"`
	AgeInDays  int          `json:"age_in_days"`
	Sex        Sex          `json:"sex"`
}

// VelocityBand is the expected growth velocity range for a metric, in
// metric units per day. Slopes inside the band classify as stable.
type VelocityBand struct {
	Lower float64
	Upper float64
}

// DefaultVelocityBands holds the per-metric stable velocity ranges used
// by trend classification, in metric units per day.
var DefaultVelocityBands = map[GrowthMetric]VelocityBand{
	MetricHeight:            {Lower: 0.015, Upper: 0.070}, // cm/day
	MetricWeight:            {Lower: 0.010, Upper: 0.030}, // kg/day
	MetricHeadCircumference: {Lower: 0.005, Upper: 0.035}, // cm/day
}
