package reference

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sproutlog/sproutlog-api/schema"
)

// Built-in growth standard curves in the WHO child growth standards
// shape: 3rd/15th/50th/85th/97th percentile bands at anchor ages from
// birth to 60 months. Heights and head circumferences are in cm,
// weights in kg.
var curveHeightMale = Curve{
	Metric: schema.MetricHeight,
	Sex:    schema.SexMale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 46.3}, {15, 47.9}, {50, 49.9}, {85, 51.9}, {97, 53.5}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 50.7}, {15, 52.5}, {50, 54.7}, {85, 56.9}, {97, 58.7}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 54.3}, {15, 56.1}, {50, 58.4}, {85, 60.7}, {97, 62.5}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 57.1}, {15, 59.0}, {50, 61.4}, {85, 63.8}, {97, 65.7}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 62.9}, {15, 65.0}, {50, 67.6}, {85, 70.2}, {97, 72.3}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 66.9}, {15, 69.2}, {50, 72.0}, {85, 74.8}, {97, 77.1}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 70.4}, {15, 72.8}, {50, 75.7}, {85, 78.6}, {97, 81.0}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 76.5}, {15, 79.1}, {50, 82.3}, {85, 85.5}, {97, 88.1}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 80.9}, {15, 83.7}, {50, 87.1}, {85, 90.5}, {97, 93.3}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 89.1}, {15, 92.3}, {50, 96.1}, {85, 99.9}, {97, 103.1}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 95.8}, {15, 99.2}, {50, 103.3}, {85, 107.4}, {97, 110.8}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 101.9}, {15, 105.5}, {50, 110.0}, {85, 114.5}, {97, 118.1}}},
	},
}

var curveHeightFemale = Curve{
	Metric: schema.MetricHeight,
	Sex:    schema.SexFemale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 45.5}, {15, 47.1}, {50, 49.1}, {85, 51.1}, {97, 52.7}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 49.7}, {15, 51.5}, {50, 53.7}, {85, 55.9}, {97, 57.7}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 53.0}, {15, 54.8}, {50, 57.1}, {85, 59.4}, {97, 61.2}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 55.5}, {15, 57.4}, {50, 59.8}, {85, 62.2}, {97, 64.1}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 61.0}, {15, 63.1}, {50, 65.7}, {85, 68.3}, {97, 70.4}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 65.0}, {15, 67.3}, {50, 70.1}, {85, 72.9}, {97, 75.2}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 68.5}, {15, 71.0}, {50, 74.0}, {85, 77.0}, {97, 79.5}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 74.7}, {15, 77.4}, {50, 80.7}, {85, 84.0}, {97, 86.7}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 79.3}, {15, 82.2}, {50, 85.7}, {85, 89.2}, {97, 92.1}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 88.0}, {15, 91.2}, {50, 95.1}, {85, 99.0}, {97, 102.2}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 94.8}, {15, 98.3}, {50, 102.7}, {85, 107.1}, {97, 110.6}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 100.9}, {15, 104.7}, {50, 109.4}, {85, 114.1}, {97, 117.9}}},
	},
}

var curveWeightMale = Curve{
	Metric: schema.MetricWeight,
	Sex:    schema.SexMale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 2.54}, {15, 2.9}, {50, 3.35}, {85, 3.8}, {97, 4.16}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 3.42}, {15, 3.89}, {50, 4.47}, {85, 5.05}, {97, 5.52}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 4.31}, {15, 4.88}, {50, 5.57}, {85, 6.26}, {97, 6.83}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 4.97}, {15, 5.6}, {50, 6.38}, {85, 7.16}, {97, 7.79}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 6.24}, {15, 7.0}, {50, 7.93}, {85, 8.86}, {97, 9.62}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 7.02}, {15, 7.86}, {50, 8.9}, {85, 9.94}, {97, 10.78}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 7.62}, {15, 8.53}, {50, 9.65}, {85, 10.77}, {97, 11.68}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 8.61}, {15, 9.66}, {50, 10.94}, {85, 12.22}, {97, 13.27}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 9.5}, {15, 10.69}, {50, 12.15}, {85, 13.61}, {97, 14.8}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 11.04}, {15, 12.52}, {50, 14.33}, {85, 16.14}, {97, 17.62}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 12.44}, {15, 14.2}, {50, 16.35}, {85, 18.5}, {97, 20.26}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 13.73}, {15, 15.8}, {50, 18.34}, {85, 20.88}, {97, 22.95}}},
	},
}

var curveWeightFemale = Curve{
	Metric: schema.MetricWeight,
	Sex:    schema.SexFemale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 2.44}, {15, 2.79}, {50, 3.23}, {85, 3.67}, {97, 4.02}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 3.17}, {15, 3.63}, {50, 4.19}, {85, 4.75}, {97, 5.21}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 3.93}, {15, 4.47}, {50, 5.13}, {85, 5.79}, {97, 6.33}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 4.5}, {15, 5.1}, {50, 5.85}, {85, 6.6}, {97, 7.2}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 5.63}, {15, 6.38}, {50, 7.3}, {85, 8.22}, {97, 8.97}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 6.35}, {15, 7.19}, {50, 8.23}, {85, 9.27}, {97, 10.11}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 6.9}, {15, 7.82}, {50, 8.95}, {85, 10.08}, {97, 11.0}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 7.82}, {15, 8.9}, {50, 10.23}, {85, 11.56}, {97, 12.64}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 8.71}, {15, 9.96}, {50, 11.48}, {85, 13.0}, {97, 14.25}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 10.37}, {15, 11.93}, {50, 13.85}, {85, 15.77}, {97, 17.33}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 11.86}, {15, 13.75}, {50, 16.07}, {85, 18.39}, {97, 20.28}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 13.18}, {15, 15.44}, {50, 18.22}, {85, 21.0}, {97, 23.26}}},
	},
}

var curveHeadMale = Curve{
	Metric: schema.MetricHeadCircumference,
	Sex:    schema.SexMale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 32.2}, {15, 33.3}, {50, 34.5}, {85, 35.7}, {97, 36.8}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 35.0}, {15, 36.1}, {50, 37.3}, {85, 38.5}, {97, 39.6}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 36.8}, {15, 37.9}, {50, 39.1}, {85, 40.3}, {97, 41.4}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 38.1}, {15, 39.2}, {50, 40.5}, {85, 41.8}, {97, 42.9}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 40.9}, {15, 42.0}, {50, 43.3}, {85, 44.6}, {97, 45.7}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 42.4}, {15, 43.5}, {50, 44.8}, {85, 46.1}, {97, 47.2}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 43.7}, {15, 44.8}, {50, 46.1}, {85, 47.4}, {97, 48.5}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 44.8}, {15, 45.9}, {50, 47.4}, {85, 48.9}, {97, 50.0}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 45.7}, {15, 46.8}, {50, 48.3}, {85, 49.8}, {97, 50.9}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 46.9}, {15, 48.0}, {50, 49.5}, {85, 51.0}, {97, 52.1}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 47.4}, {15, 48.6}, {50, 50.2}, {85, 51.8}, {97, 53.0}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 47.9}, {15, 49.1}, {50, 50.7}, {85, 52.3}, {97, 53.5}}},
	},
}

var curveHeadFemale = Curve{
	Metric: schema.MetricHeadCircumference,
	Sex:    schema.SexFemale,
	Anchors: []Anchor{
		{AgeInDays: 0, Bands: []BandValue{{3, 31.6}, {15, 32.7}, {50, 33.9}, {85, 35.1}, {97, 36.2}}},
		{AgeInDays: 30, Bands: []BandValue{{3, 34.2}, {15, 35.3}, {50, 36.5}, {85, 37.7}, {97, 38.8}}},
		{AgeInDays: 61, Bands: []BandValue{{3, 36.0}, {15, 37.1}, {50, 38.3}, {85, 39.5}, {97, 40.6}}},
		{AgeInDays: 91, Bands: []BandValue{{3, 37.1}, {15, 38.2}, {50, 39.5}, {85, 40.8}, {97, 41.9}}},
		{AgeInDays: 183, Bands: []BandValue{{3, 39.8}, {15, 40.9}, {50, 42.2}, {85, 43.5}, {97, 44.6}}},
		{AgeInDays: 274, Bands: []BandValue{{3, 41.4}, {15, 42.5}, {50, 43.8}, {85, 45.1}, {97, 46.2}}},
		{AgeInDays: 365, Bands: []BandValue{{3, 42.5}, {15, 43.6}, {50, 44.9}, {85, 46.2}, {97, 47.3}}},
		{AgeInDays: 548, Bands: []BandValue{{3, 43.6}, {15, 44.7}, {50, 46.2}, {85, 47.7}, {97, 48.8}}},
		{AgeInDays: 730, Bands: []BandValue{{3, 44.6}, {15, 45.7}, {50, 47.2}, {85, 48.7}, {97, 49.8}}},
		{AgeInDays: 1095, Bands: []BandValue{{3, 45.9}, {15, 47.0}, {50, 48.5}, {85, 50.0}, {97, 51.1}}},
		{AgeInDays: 1461, Bands: []BandValue{{3, 46.5}, {15, 47.7}, {50, 49.3}, {85, 50.9}, {97, 52.1}}},
		{AgeInDays: 1826, Bands: []BandValue{{3, 47.1}, {15, 48.3}, {50, 49.9}, {85, 51.5}, {97, 52.7}}},
	},
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide growth standards table. It is built
// on first use and never reloaded; concurrent readers share it safely
// because it is immutable after construction.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := NewTable([]Curve{
			curveHeightMale, curveHeightFemale,
			curveWeightMale, curveWeightFemale,
			curveHeadMale, curveHeadFemale,
		})
		if err != nil {
			// built-in data is fixed at compile time, so this is unreachable
			// short of a bad edit to this file
			log.WithError(err).Panic("built-in growth standards are invalid")
		}
		defaultTable = table
	})
	return defaultTable
}
