package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutlog/sproutlog-api/schema"
)

func testCurve() Curve {
	return Curve{
		Metric: schema.MetricWeight,
		Sex:    schema.SexFemale,
		Anchors: []Anchor{
			{AgeInDays: 0, Bands: []BandValue{{3, 2.4}, {50, 3.2}, {97, 4.0}}},
			{AgeInDays: 100, Bands: []BandValue{{3, 4.4}, {50, 5.2}, {97, 6.0}}},
			{AgeInDays: 200, Bands: []BandValue{{3, 5.4}, {50, 6.2}, {97, 7.0}}},
		},
	}
}

func TestBracketExactAnchor(t *testing.T) {
	table, err := NewTable([]Curve{testCurve()})
	assert.NoError(t, err)

	bracket, err := table.Bracket(schema.MetricWeight, schema.SexFemale, 100)
	assert.NoError(t, err)
	assert.True(t, bracket.Exact)
	assert.Equal(t, 100, bracket.Lower.AgeInDays)
	assert.Equal(t, 100, bracket.Upper.AgeInDays)
}

func TestBracketBetweenAnchors(t *testing.T) {
	table, err := NewTable([]Curve{testCurve()})
	assert.NoError(t, err)

	bracket, err := table.Bracket(schema.MetricWeight, schema.SexFemale, 150)
	assert.NoError(t, err)
	assert.False(t, bracket.Exact)
	assert.Equal(t, 100, bracket.Lower.AgeInDays)
	assert.Equal(t, 200, bracket.Upper.AgeInDays)
}

func TestBracketAboveRangeUsesNearestAnchor(t *testing.T) {
	table, err := NewTable([]Curve{testCurve()})
	assert.NoError(t, err)

	bracket, err := table.Bracket(schema.MetricWeight, schema.SexFemale, 500)
	assert.Equal(t, ErrAgeOutOfRange, err)
	assert.Equal(t, 200, bracket.Lower.AgeInDays)
	assert.Equal(t, 200, bracket.Upper.AgeInDays)
}

func TestBracketUnknownCurve(t *testing.T) {
	table, err := NewTable([]Curve{testCurve()})
	assert.NoError(t, err)

	bracket, err := table.Bracket(schema.MetricHeight, schema.SexMale, 100)
	assert.Equal(t, ErrUnknownCurve, err)
	assert.Nil(t, bracket)
}

func TestBandsAtInterpolatesMidpoint(t *testing.T) {
	table, err := NewTable([]Curve{testCurve()})
	assert.NoError(t, err)

	bracket, err := table.Bracket(schema.MetricWeight, schema.SexFemale, 150)
	assert.NoError(t, err)

	bands := bracket.BandsAt(150)
	assert.Equal(t, 3, len(bands))
	assert.InDelta(t, 4.9, bands[0].Value, 1e-9)
	assert.InDelta(t, 5.7, bands[1].Value, 1e-9)
	assert.InDelta(t, 6.5, bands[2].Value, 1e-9)
}

func TestNewTableRejectsDecreasingBands(t *testing.T) {
	curve := testCurve()
	curve.Anchors[1].Bands[2].Value = 5.0 // below the 50th band

	_, err := NewTable([]Curve{curve})
	assert.Error(t, err)
}

func TestNewTableRejectsUnorderedAnchors(t *testing.T) {
	curve := testCurve()
	curve.Anchors[2].AgeInDays = 100 // duplicate age

	_, err := NewTable([]Curve{curve})
	assert.Error(t, err)
}

func TestNewTableRejectsMismatchedBandSets(t *testing.T) {
	curve := testCurve()
	curve.Anchors[1].Bands = []BandValue{{3, 4.4}, {50, 5.2}}

	_, err := NewTable([]Curve{curve})
	assert.Equal(t, ErrMismatchedBands, err)
}

func TestDefaultTableIsValid(t *testing.T) {
	table := Default()
	assert.NotNil(t, table)

	for _, metric := range schema.GrowthMetrics {
		for _, sex := range []schema.Sex{schema.SexMale, schema.SexFemale} {
			bracket, err := table.Bracket(metric, sex, 365)
			assert.NoError(t, err)
			assert.True(t, bracket.Exact)
		}
	}
}
