package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         Input
		wantScore  int
		wantRating string
		wantColor  string
	}{
		{
			// +5 rrr, +4 liquidation (far from notional), +3 stop, +3 fees = 15
			name: "all_factors_favorable",
			in: Input{
				RiskRewardRatio:  3,
				PositionSize:     100,
				LiquidationPrice: 80,
				StopLossDistance: 3,
				FeeImpact:        2,
				PotentialProfit:  100,
			},
			wantScore:  15,
			wantRating: "Strong",
			wantColor:  "green",
		},
		{
			// -2 rrr, -3 liquidation, -2 stop, -2 fees = -9
			name: "all_factors_adverse",
			in: Input{
				RiskRewardRatio:  1,
				PositionSize:     1000,
				LiquidationPrice: 990,
				StopLossDistance: 0.5,
				FeeImpact:        20,
				PotentialProfit:  100,
			},
			wantScore:  -9,
			wantRating: "Very Weak",
			wantColor:  "red",
		},
		{
			name:       "empty_bundle_scores_zero",
			in:         Input{},
			wantScore:  0,
			wantRating: "Very Weak",
			wantColor:  "red",
		},
		{
			// Only the ratio factor fires; everything else is skipped.
			name:       "rrr_only",
			in:         Input{RiskRewardRatio: 2},
			wantScore:  3,
			wantRating: "Very Weak",
			wantColor:  "red",
		},
		{
			// rrr 2 -> +3, liquidation distance 10% -> +2, stop 6% -> -2,
			// fee share 8% -> +2 = 5
			name: "mid_bands",
			in: Input{
				RiskRewardRatio:  2,
				PositionSize:     100,
				LiquidationPrice: 90,
				StopLossDistance: 6,
				FeeImpact:        8,
				PotentialProfit:  100,
			},
			wantScore:  5,
			wantRating: "Weak",
			wantColor:  "orange",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Aggregate(tt.in)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantRating, got.Rating)
			assert.Equal(t, tt.wantColor, got.Color)
		})
	}
}

// The two presets band the same total differently: 15 is already Strong for
// the aggregate preset but still Moderate for the detailed one.
func TestPresetBandsDiverge(t *testing.T) {
	t.Parallel()

	agg := Aggregate(Input{
		RiskRewardRatio:  3,
		PositionSize:     100,
		LiquidationPrice: 80,
		StopLossDistance: 3,
		FeeImpact:        2,
		PotentialProfit:  100,
	})
	assert.Equal(t, 15, agg.Score)
	assert.Equal(t, "Strong", agg.Rating)

	// +3 rrr, +2 leverage, +2 liquidation, +3 margin, +3 stop, +2 fees = 15
	det := Detailed(100, 2, 10, 90, 20, 97, 8, 100)
	assert.Equal(t, 15, det.Score)
	assert.Equal(t, "Moderate ✅", det.Label)
	assert.Equal(t, "text-yellow-500", det.Color)
}

func TestDetailed(t *testing.T) {
	t.Parallel()

	// Safe setup: +5 rrr, +5 leverage, +4 liquidation, +5 margin, +3 stop,
	// +3 fees = 25
	got := Detailed(100, 3, 5, 80, 5, 97, 2, 100)
	assert.Equal(t, 25, got.Score)
	assert.Equal(t, "Very Strong 🚀", got.Label)
	assert.Equal(t, "text-purple-500", got.Color)

	factors := make([]string, 0, len(got.Details))
	for _, d := range got.Details {
		factors = append(factors, d.Factor)
	}
	assert.Equal(t, []string{
		"Risk/Reward Ratio",
		"Leverage",
		"Liquidation Distance",
		"Margin Allocation",
		"Stop Loss Distance",
		"Fee Impact",
	}, factors)
}

func TestDetailed_AdverseSetup(t *testing.T) {
	t.Parallel()

	// -2 rrr, -3 leverage, -3 liquidation, -3 margin, -2 stop, -2 fees = -15
	got := Detailed(100, 1, 50, 99, 80, 99.5, 20, 100)
	assert.Equal(t, -15, got.Score)
	assert.Equal(t, "Very Weak ❌", got.Label)
	assert.Equal(t, "text-red-500", got.Color)
	assert.Len(t, got.Details, 6)

	for _, d := range got.Details {
		assert.Negative(t, d.Score, "factor %s", d.Factor)
	}
}

func TestDetailed_AlwaysEvaluatesAllFactors(t *testing.T) {
	t.Parallel()

	// Unlike the aggregate preset, missing inputs still produce entries.
	got := Detailed(0, 0, 0, 0, 0, 0, 0, 0)
	assert.Len(t, got.Details, 6)
}
