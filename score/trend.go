package score

import (
	"fmt"

	"github.com/sproutlog/sproutlog-api/consts"
	"github.com/sproutlog/sproutlog-api/schema"
)

var ErrUnknownMetric = fmt.Errorf("no velocity band for metric")

// AnalyzeTrend classifies the growth velocity of one metric series. The
// caller supplies the window: measurements must belong to one child and
// one metric and be ordered by recording time. Sampling intervals may
// be irregular.
//
// Fewer than two points yield an insufficient-data result with a nil
// slope. Exactly two points use the two-point slope; three or more use
// a least-squares fit of value against age. The slope is compared to
// the metric's expected velocity band: above it accelerating, below it
// declining, inside it stable.
func AnalyzeTrend(metric schema.GrowthMetric, measurements []schema.Measurement) (schema.TrendResult, error) {
	band, ok := schema.DefaultVelocityBands[metric]
	if !ok {
		return schema.TrendResult{}, ErrUnknownMetric
	}

	result := schema.TrendResult{
		Metric:         metric,
		SampleCount:    len(measurements),
		Classification: schema.TrendInsufficientData,
		Confidence:     schema.ConfidenceLow,
	}

	if len(measurements) > 0 {
		result.WindowStart = measurements[0].RecordedAt
		result.WindowEnd = measurements[len(measurements)-1].RecordedAt
	}
	if len(measurements) < consts.TrendMinSamples {
		return result, nil
	}

	var slope float64
	if len(measurements) == 2 {
		first, last := measurements[0], measurements[1]
		span := float64(last.AgeInDays - first.AgeInDays)
		if span == 0 {
			// two samples at the same age carry no velocity signal
			return result, nil
		}
		slope = (last.Value - first.Value) / span
	} else {
		fitted, ok := leastSquaresSlope(measurements)
		if !ok {
			return result, nil
		}
		slope = fitted
	}

	result.Slope = &slope
	switch {
	case slope > band.Upper:
		result.Classification = schema.TrendAccelerating
	case slope < band.Lower:
		result.Classification = schema.TrendDeclining
	default:
		result.Classification = schema.TrendStable
	}

	switch {
	case len(measurements) >= consts.TrendHighConfidenceMin:
		result.Confidence = schema.ConfidenceHigh
	case len(measurements) >= consts.TrendMediumConfidenceMin:
		result.Confidence = schema.ConfidenceMedium
	}

	return result, nil
}

// leastSquaresSlope fits value against age in days. It reports false
// when every sample sits at the same age, where the fit is undefined.
func leastSquaresSlope(measurements []schema.Measurement) (float64, bool) {
	n := float64(len(measurements))

	var sumX, sumY float64
	for _, m := range measurements {
		sumX += float64(m.AgeInDays)
		sumY += m.Value
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, m := range measurements {
		dx := float64(m.AgeInDays) - meanX
		sxx += dx * dx
		sxy += dx * (m.Value - meanY)
	}
	if sxx == 0 {
		return 0, false
	}

	return sxy / sxx, true
}
