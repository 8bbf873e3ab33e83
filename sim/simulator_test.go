package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levtools/levcalc/trade"
)

func TestSimulate_MarketOrder(t *testing.T) {
	t.Parallel()

	s := New(100, 10, 1, 1000, 2, 6, 120, 90, trade.Market)
	got := s.Simulate()

	assert.InDelta(t, 100.0, got.EntryPrice, 1e-9)
	assert.InDelta(t, 1.0, got.Leverage, 1e-9)
	assert.InDelta(t, 1000.0, got.MarginUsed, 1e-9)
	assert.InDelta(t, 1000.0, got.PositionSize, 1e-9)
	assert.InDelta(t, 60.0, got.MarketFee, 1e-9)
	assert.InDelta(t, 0.0, got.LimitFee, 1e-9)
	assert.InDelta(t, 140.0, got.ProfitAtTP, 1e-9) // 10*(120-100) - 60
	assert.InDelta(t, -160.0, got.LossAtSL, 1e-9)  // 10*(90-100) - 60
}

func TestSimulate_LimitOrderUsesMakerFee(t *testing.T) {
	t.Parallel()

	s := New(100, 10, 2, 500, 2, 6, 120, 90, trade.Limit)
	got := s.Simulate()

	assert.InDelta(t, 1000.0, got.PositionSize, 1e-9) // 500 * 2
	assert.InDelta(t, 0.0, got.MarketFee, 1e-9)
	assert.InDelta(t, 20.0, got.LimitFee, 1e-9) // 1000 * 2%
	assert.InDelta(t, 180.0, got.ProfitAtTP, 1e-9)
}

func TestSimulate_TriggerOrderHasNoFeeLine(t *testing.T) {
	t.Parallel()

	s := New(100, 10, 2, 500, 2, 6, 120, 90, trade.Trigger)
	got := s.Simulate()

	// Trigger orders pay the maker rate but neither fee line item applies.
	assert.InDelta(t, 0.0, got.MarketFee, 1e-9)
	assert.InDelta(t, 0.0, got.LimitFee, 1e-9)
	assert.InDelta(t, 180.0, got.ProfitAtTP, 1e-9) // fee still deducted from PnL
}

func TestPnL(t *testing.T) {
	t.Parallel()

	s := New(100, 10, 1, 1000, 2, 6, 0, 0, trade.Market)
	assert.InDelta(t, 200.0, s.PnL(120), 1e-9)
	assert.InDelta(t, -100.0, s.PnL(90), 1e-9)
	assert.InDelta(t, 0.0, s.PnL(100), 1e-9)
}

func TestMaintenanceMarginAndLiquidation(t *testing.T) {
	t.Parallel()

	s := New(100, 10, 1, 1000, 2, 6, 0, 0, trade.Market)
	assert.InDelta(t, 5.0, s.MaintenanceMargin(), 1e-9)
	// units held = 1000/100 = 10; entry - (1000-5)/10 = 0.5
	assert.InDelta(t, 0.5, s.LiquidationPrice(), 1e-9)

	empty := New(0, 0, 1, 0, 2, 6, 0, 0, trade.Market)
	assert.InDelta(t, 0.0, empty.LiquidationPrice(), 1e-9)
}

func TestRequiredMargin(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 200.0, RequiredMargin(100, 10, 5), 1e-9)
	assert.InDelta(t, 0.0, RequiredMargin(100, 10, 0), 1e-9)
}

func TestRequiredLeverage(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, RequiredLeverage(100, 10, 200), 1e-9)
	assert.InDelta(t, 0.0, RequiredLeverage(100, 10, 0), 1e-9)
}
