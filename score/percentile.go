package score

import (
	"fmt"

	"github.com/sproutlog/sproutlog-api/reference"
	"github.com/sproutlog/sproutlog-api/schema"
)

var (
	ErrInvalidMeasurement = fmt.Errorf("measurement is malformed")
	ErrInvalidPercentile  = fmt.Errorf("percentile is outside [0,100]")
)

// ComputePercentile places one measurement on the reference curves.
//
// The band values of the two anchors bracketing the measurement age are
// interpolated at that age, then the percentile is interpolated between
// the two bands bracketing the measured value. Values outside the
// outermost bands clamp to 0 or 100. Ages outside the table use the
// nearest anchor and flag the result as out of range instead of
// failing.
//
// ZScore is always nil: a banded table carries no LMS parameters, so a
// faithful z-score cannot be computed from it.
func ComputePercentile(m schema.Measurement, table reference.Provider) (*schema.PercentileResult, error) {
	if m.Value <= 0 || m.AgeInDays < 0 {
		return nil, ErrInvalidMeasurement
	}

	bracket, err := table.Bracket(m.Metric, m.Sex, m.AgeInDays)
	outOfRange := false
	if err != nil {
		if err != reference.ErrAgeOutOfRange {
			return nil, err
		}
		outOfRange = true
	}

	bands := bracket.BandsAt(m.AgeInDays)
	percentile, band := placeValue(bands, m.Value)

	unit := m.Unit
	if unit == "" {
		unit = m.Metric.Unit()
	}

	return &schema.PercentileResult{
		Metric:     m.Metric,
		Value:      m.Value,
		Unit:       unit,
		AgeInDays:  m.AgeInDays,
		Percentile: percentile,
		ZScore:     nil,
		Band:       band,
		OutOfRange: outOfRange,
	}, nil
}

// ValueAtPercentile is the inverse lookup: the metric value sitting at
// a given percentile for an age. Percentiles outside the outermost
// bands clamp to the nearest band value.
func ValueAtPercentile(table reference.Provider, metric schema.GrowthMetric, sex schema.Sex, ageInDays int, percentile float64) (float64, error) {
	if percentile < 0 || percentile > 100 {
		return 0, ErrInvalidPercentile
	}

	bracket, err := table.Bracket(metric, sex, ageInDays)
	if err != nil && err != reference.ErrAgeOutOfRange {
		return 0, err
	}

	bands := bracket.BandsAt(ageInDays)
	if percentile <= bands[0].Percentile {
		return bands[0].Value, nil
	}
	if last := bands[len(bands)-1]; percentile >= last.Percentile {
		return last.Value, nil
	}

	for i := 1; i < len(bands); i++ {
		lo, hi := bands[i-1], bands[i]
		if percentile <= hi.Percentile {
			frac := (percentile - lo.Percentile) / (hi.Percentile - lo.Percentile)
			return lo.Value + (hi.Value-lo.Value)*frac, nil
		}
	}

	return bands[len(bands)-1].Value, nil
}

// placeValue locates a value between percentile bands and returns the
// interpolated percentile with a band label.
func placeValue(bands []reference.BandValue, value float64) (float64, string) {
	for _, b := range bands {
		if value == b.Value {
			return b.Percentile, ordinal(b.Percentile)
		}
	}

	if value < bands[0].Value {
		return 0, "<" + ordinal(bands[0].Percentile)
	}
	last := bands[len(bands)-1]
	if value > last.Value {
		return 100, ">" + ordinal(last.Percentile)
	}

	for i := 1; i < len(bands); i++ {
		lo, hi := bands[i-1], bands[i]
		if value < hi.Value {
			frac := (value - lo.Value) / (hi.Value - lo.Value)
			percentile := lo.Percentile + (hi.Percentile-lo.Percentile)*frac
			return percentile, ordinal(lo.Percentile) + "-" + ordinal(hi.Percentile)
		}
	}

	return last.Percentile, ordinal(last.Percentile)
}

func ordinal(percentile float64) string {
	n := int(percentile)
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
