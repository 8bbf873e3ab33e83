package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    float64
		quantity float64
		leverage float64
		isLong   bool
		want     PositionMetrics
	}{
		{
			name:  "long_5x",
			price: 100, quantity: 10, leverage: 5, isLong: true,
			want: PositionMetrics{
				PositionSize:      1000,
				Margin:            200,
				MaintenanceMargin: 5,
				LiquidationPrice:  80,
			},
		},
		{
			name:  "short_5x",
			price: 100, quantity: 10, leverage: 5, isLong: false,
			want: PositionMetrics{
				PositionSize:      1000,
				Margin:            200,
				MaintenanceMargin: 5,
				LiquidationPrice:  120,
			},
		},
		{
			name:  "zero_price",
			price: 0, quantity: 10, leverage: 5, isLong: true,
			want: PositionMetrics{},
		},
		{
			name:  "zero_quantity",
			price: 100, quantity: 0, leverage: 5, isLong: true,
			want: PositionMetrics{},
		},
		{
			name:  "leverage_below_one",
			price: 100, quantity: 10, leverage: 0.5, isLong: true,
			want: PositionMetrics{PositionSize: 1000},
		},
		{
			name:  "leverage_zero",
			price: 100, quantity: 10, leverage: 0, isLong: false,
			want: PositionMetrics{PositionSize: 1000},
		},
		{
			name:  "one_x_long_liquidates_at_zero",
			price: 100, quantity: 1, leverage: 1, isLong: true,
			want: PositionMetrics{
				PositionSize:      100,
				Margin:            100,
				MaintenanceMargin: 0.5,
				LiquidationPrice:  0,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Position(tt.price, tt.quantity, tt.leverage, tt.isLong)
			assert.InDelta(t, tt.want.PositionSize, got.PositionSize, 1e-9)
			assert.InDelta(t, tt.want.Margin, got.Margin, 1e-9)
			assert.InDelta(t, tt.want.MaintenanceMargin, got.MaintenanceMargin, 1e-9)
			assert.InDelta(t, tt.want.LiquidationPrice, got.LiquidationPrice, 1e-9)
		})
	}
}

func TestRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		price        float64
		sl, tp       float64
		positionSize float64
		want         RiskMetrics
	}{
		{
			name:  "round_trip_ratio",
			price: 100, sl: 90, tp: 120, positionSize: 1000,
			want: RiskMetrics{
				StopLossDistance:   10,
				TakeProfitDistance: 20,
				PotentialLoss:      10000,
				PotentialProfit:    20000,
				RiskRewardRatio:    2,
			},
		},
		{
			name:  "unset_levels",
			price: 100, sl: 0, tp: 0, positionSize: 1000,
			want: RiskMetrics{},
		},
		{
			name:  "zero_price",
			price: 0, sl: 90, tp: 120, positionSize: 1000,
			want: RiskMetrics{},
		},
		{
			name:  "zero_position",
			price: 100, sl: 90, tp: 120, positionSize: 0,
			want: RiskMetrics{},
		},
		{
			name:  "tp_only_ratio_stays_zero",
			price: 100, sl: 0, tp: 120, positionSize: 500,
			want: RiskMetrics{
				TakeProfitDistance: 20,
				PotentialProfit:    10000,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Risk(tt.price, tt.sl, tt.tp, tt.positionSize)
			assert.InDelta(t, tt.want.StopLossDistance, got.StopLossDistance, 1e-9)
			assert.InDelta(t, tt.want.TakeProfitDistance, got.TakeProfitDistance, 1e-9)
			assert.InDelta(t, tt.want.PotentialLoss, got.PotentialLoss, 1e-9)
			assert.InDelta(t, tt.want.PotentialProfit, got.PotentialProfit, 1e-9)
			assert.InDelta(t, tt.want.RiskRewardRatio, got.RiskRewardRatio, 1e-9)
		})
	}
}

func TestFeeImpact(t *testing.T) {
	t.Parallel()

	// Rates apply as fractions of the notional.
	assert.InDelta(t, 80.0, FeeImpact(1000, 0.02, 0.06), 1e-9)
	assert.InDelta(t, 0.0, FeeImpact(0, 0.02, 0.06), 1e-9)
	assert.InDelta(t, 0.0, FeeImpact(1000, 0, 0), 1e-9)
}
