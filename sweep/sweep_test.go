package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levtools/levcalc/trade"
)

func sweepInputs() trade.Inputs {
	in := trade.NewInputs()
	in.Price = 100
	in.Quantity = 10
	return in
}

func TestLeverage(t *testing.T) {
	t.Parallel()

	report, err := Leverage(sweepInputs(), 2, 1, 5, 1)
	assert.NoError(t, err)
	assert.Len(t, report.Points, 5)

	assert.InDelta(t, 1.0, report.Points[0].Leverage, 1e-9)
	assert.InDelta(t, 5.0, report.Points[4].Leverage, 1e-9)

	// Margin shrinks as leverage grows; the notional stays fixed.
	assert.InDelta(t, 1000.0, report.Points[0].Metrics.Margin, 1e-9)
	assert.InDelta(t, 200.0, report.Points[4].Metrics.Margin, 1e-9)
	for _, p := range report.Points {
		assert.InDelta(t, 1000.0, p.Metrics.PositionSize, 1e-9)
	}

	assert.GreaterOrEqual(t, report.MaxScore, report.MinScore)
	assert.GreaterOrEqual(t, report.MaxScore, report.MeanScore)
	assert.LessOrEqual(t, report.MinScore, report.MeanScore)
}

func TestLeverage_SingleStep(t *testing.T) {
	t.Parallel()

	report, err := Leverage(sweepInputs(), 2, 5, 5, 1)
	assert.NoError(t, err)
	assert.Len(t, report.Points, 1)
	assert.InDelta(t, report.MinScore, report.MaxScore, 1e-9)
	assert.InDelta(t, 0.0, report.ScoreStdDev, 1e-9)
}

func TestLeverage_BadRange(t *testing.T) {
	t.Parallel()

	_, err := Leverage(sweepInputs(), 2, 1, 5, 0)
	assert.Error(t, err)

	_, err = Leverage(sweepInputs(), 2, 5, 1, 1)
	assert.Error(t, err)
}
