package reference

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/sproutlog/sproutlog-api/schema"
)

var (
	ErrAgeOutOfRange   = fmt.Errorf("age is outside the reference table range")
	ErrUnknownCurve    = fmt.Errorf("no reference curve for metric and sex")
	ErrInvalidCurve    = fmt.Errorf("reference curve violates table invariants")
	ErrEmptyTable      = fmt.Errorf("reference table has no curves")
	ErrMismatchedBands = fmt.Errorf("anchors of one curve define different percentile bands")
)

// BandValue is one percentile band at one age: the value below which
// Percentile percent of the reference population falls.
type BandValue struct {
	Percentile float64
	Value      float64
}

// Anchor is one age point of a reference curve. Bands are strictly
// increasing in both percentile and value.
type Anchor struct {
	AgeInDays int
	Bands     []BandValue
}

// Curve is the full banded reference for one metric and sex, with
// anchors strictly increasing in age.
type Curve struct {
	Metric  schema.GrowthMetric
	Sex     schema.Sex
	Anchors []Anchor
}

// Bracket is the pair of anchors surrounding a lookup age. On an exact
// anchor hit Lower and Upper are the same anchor and Exact is set. When
// the age falls outside the curve both point at the nearest anchor and
// the lookup additionally returns ErrAgeOutOfRange.
type Bracket struct {
	Lower Anchor
	Upper Anchor
	Exact bool
}

// BandsAt interpolates every percentile band of the bracket at the
// given age. Outside the bracket the nearest anchor's bands are
// returned unchanged.
func (b *Bracket) BandsAt(ageInDays int) []BandValue {
	if b.Exact || b.Lower.AgeInDays == b.Upper.AgeInDays {
		bands := make([]BandValue, len(b.Lower.Bands))
		copy(bands, b.Lower.Bands)
		return bands
	}

	span := float64(b.Upper.AgeInDays - b.Lower.AgeInDays)
	frac := float64(ageInDays-b.Lower.AgeInDays) / span

	bands := make([]BandValue, len(b.Lower.Bands))
	for i, lo := range b.Lower.Bands {
		hi := b.Upper.Bands[i]
		bands[i] = BandValue{
			Percentile: lo.Percentile,
			Value:      lo.Value + (hi.Value-lo.Value)*frac,
		}
	}
	return bands
}

// Provider resolves the reference anchors bracketing an age. The
// production implementation is Table; tests inject synthetic curves.
type Provider interface {
	Bracket(metric schema.GrowthMetric, sex schema.Sex, ageInDays int) (*Bracket, error)
}

type curveKey struct {
	metric schema.GrowthMetric
	sex    schema.Sex
}

// Table is an immutable set of reference curves. It is built once at
// process start and is safe for unsynchronized concurrent reads.
type Table struct {
	curves map[curveKey]Curve
}

// NewTable validates the given curves and builds a lookup table.
func NewTable(curves []Curve) (*Table, error) {
	if len(curves) == 0 {
		return nil, ErrEmptyTable
	}

	byKey := make(map[curveKey]Curve, len(curves))
	for _, c := range curves {
		if err := validateCurve(c); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"metric": c.Metric,
				"sex":    c.Sex,
			}).Error("reject invalid reference curve")
			return nil, err
		}
		byKey[curveKey{c.Metric, c.Sex}] = c
	}

	return &Table{curves: byKey}, nil
}

func validateCurve(c Curve) error {
	if len(c.Anchors) == 0 {
		return fmt.Errorf("%w: curve has no anchors", ErrInvalidCurve)
	}

	first := c.Anchors[0].Bands
	if len(first) < 2 {
		return fmt.Errorf("%w: fewer than two percentile bands", ErrInvalidCurve)
	}

	lastAge := -1
	for _, a := range c.Anchors {
		if a.AgeInDays <= lastAge {
			return fmt.Errorf("%w: anchor ages not strictly increasing at day %d", ErrInvalidCurve, a.AgeInDays)
		}
		lastAge = a.AgeInDays

		if len(a.Bands) != len(first) {
			return ErrMismatchedBands
		}
		for i, b := range a.Bands {
			if b.Value <= 0 {
				return fmt.Errorf("%w: non-positive band value at day %d", ErrInvalidCurve, a.AgeInDays)
			}
			if i == 0 {
				if b.Percentile != first[0].Percentile {
					return ErrMismatchedBands
				}
				continue
			}
			if b.Percentile != first[i].Percentile {
				return ErrMismatchedBands
			}
			if b.Percentile <= a.Bands[i-1].Percentile || b.Value <= a.Bands[i-1].Value {
				return fmt.Errorf("%w: bands not strictly increasing at day %d", ErrInvalidCurve, a.AgeInDays)
			}
		}
	}

	return nil
}

// Bracket finds the anchors surrounding the given age. Ages outside the
// curve resolve to the nearest anchor together with ErrAgeOutOfRange,
// which callers treat as a degraded result rather than a failure.
func (t *Table) Bracket(metric schema.GrowthMetric, sex schema.Sex, ageInDays int) (*Bracket, error) {
	curve, ok := t.curves[curveKey{metric, sex}]
	if !ok {
		return nil, ErrUnknownCurve
	}

	anchors := curve.Anchors
	if ageInDays < anchors[0].AgeInDays {
		return &Bracket{Lower: anchors[0], Upper: anchors[0], Exact: true}, ErrAgeOutOfRange
	}
	if last := anchors[len(anchors)-1]; ageInDays > last.AgeInDays {
		return &Bracket{Lower: last, Upper: last, Exact: true}, ErrAgeOutOfRange
	}

	idx := sort.Search(len(anchors), func(i int) bool {
		return anchors[i].AgeInDays >= ageInDays
	})
	if anchors[idx].AgeInDays == ageInDays {
		return &Bracket{Lower: anchors[idx], Upper: anchors[idx], Exact: true}, nil
	}

	return &Bracket{Lower: anchors[idx-1], Upper: anchors[idx]}, nil
}
