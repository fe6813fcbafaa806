package ingest

import (
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/shopspring/decimal"
)

// NormalizeMinMax rescales values to the 0-100 range per indicator
// column, preserving the original number in RawValue. A column where
// all values are equal maps to 100.
func NormalizeMinMax(rows []*dto.SpreadsheetRow) {
	type bounds struct {
		min, max float64
		seen     bool
	}

	byIndicator := map[string]*bounds{}
	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		b, ok := byIndicator[row.IndicatorName]
		if !ok {
			b = &bounds{}
			byIndicator[row.IndicatorName] = b
		}
		if !b.seen || *row.Value < b.min {
			b.min = *row.Value
		}
		if !b.seen || *row.Value > b.max {
			b.max = *row.Value
		}
		b.seen = true
	}

	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		b := byIndicator[row.IndicatorName]

		var normalized float64
		if b.max == b.min {
			normalized = 100
		} else {
			normalized = (*row.Value - b.min) / (b.max - b.min) * 100
		}
		normalized = decimal.NewFromFloat(normalized).Round(2).InexactFloat64()
		if row.RawValue == nil {
			row.RawValue = row.Value
		}
		row.Value = &normalized
	}
}
