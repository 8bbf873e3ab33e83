package pipeline

import (
	"math"

	"github.com/levtools/levcalc/risk"
	"github.com/levtools/levcalc/sim"
	"github.com/levtools/levcalc/trade"
)

// Calculator owns the mutable input record for one session and encodes the
// field-change policy: which fields reset or re-derive when another changes.
// Construct one per session and hand it to every consumer; each setter
// merges the edit atomically and returns a fresh Metrics bundle.
//
// Policy choices:
//   - price or quantity edits reset manually entered TP/SL to zero so they
//     re-derive from the target ratio at the new price
//   - leverage edits leave TP/SL untouched
//   - TP/SL edits re-derive the target ratio from the realized distances
//   - side flips reset TP/SL (they must move to the opposite sides of
//     entry) and keep the target ratio
type Calculator struct {
	inputs      trade.Inputs
	targetRatio float64
}

// NewCalculator starts a session from the empty-form defaults.
func NewCalculator() *Calculator {
	return &Calculator{inputs: trade.NewInputs(), targetRatio: DefaultTargetRatio}
}

// NewCalculatorWith starts a session from an existing snapshot.
func NewCalculatorWith(in trade.Inputs, targetRatio float64) *Calculator {
	if targetRatio <= 0 {
		targetRatio = DefaultTargetRatio
	}
	return &Calculator{inputs: in, targetRatio: targetRatio}
}

// Inputs returns a copy of the current input snapshot.
func (c *Calculator) Inputs() trade.Inputs {
	return c.inputs
}

// TargetRatio returns the current target risk/reward ratio.
func (c *Calculator) TargetRatio() float64 {
	return c.targetRatio
}

// recompute runs the pipeline and caches the display-only derived fields
// back onto the input record.
func (c *Calculator) recompute() Metrics {
	m := Compute(c.inputs, c.targetRatio)
	c.inputs.Margin = m.Margin
	c.inputs.MaintenanceMargin = m.MaintenanceMargin
	c.inputs.LiquidationPrice = m.LiquidationPrice
	return m
}

// Recompute re-runs the pipeline over the current snapshot without changing
// any field.
func (c *Calculator) Recompute() Metrics {
	return c.recompute()
}

// SetPrice updates the entry price. Manually entered TP/SL are reset so they
// re-derive from the target ratio.
func (c *Calculator) SetPrice(v float64) Metrics {
	c.inputs.Price = math.Max(0, v)
	c.inputs.TP = 0
	c.inputs.SL = 0
	return c.recompute()
}

// SetQuantity updates the quantity with the same TP/SL reset as SetPrice.
func (c *Calculator) SetQuantity(v float64) Metrics {
	c.inputs.Quantity = math.Max(0, v)
	c.inputs.TP = 0
	c.inputs.SL = 0
	return c.recompute()
}

// SetLeverage updates the leverage, leaving TP/SL untouched.
func (c *Calculator) SetLeverage(v float64) Metrics {
	c.inputs.Leverage = math.Max(0, v)
	return c.recompute()
}

// SetTakeProfit sets an explicit take-profit level and re-derives the target
// ratio from the realized distances.
func (c *Calculator) SetTakeProfit(v float64) Metrics {
	v = math.Max(0, v)
	if v > 0 {
		c.rederiveRatio(v, c.inputs.SL)
	}
	c.inputs.TP = v
	return c.recompute()
}

// SetStopLoss sets an explicit stop-loss level and re-derives the target
// ratio from the realized distances.
func (c *Calculator) SetStopLoss(v float64) Metrics {
	v = math.Max(0, v)
	if v > 0 {
		c.rederiveRatio(c.inputs.TP, v)
	}
	c.inputs.SL = v
	return c.recompute()
}

// rederiveRatio recomputes the target ratio from the realized distances of
// the edited pair; an unset leg falls back to its resolved default so a lone
// TP or SL edit still yields a sensible ratio.
func (c *Calculator) rederiveRatio(tp, sl float64) {
	if c.inputs.Price <= 0 {
		return
	}
	isLong := c.inputs.PositionSide.IsLong()
	lv := risk.ResolveTpSl(c.inputs.Price, isLong, c.targetRatio, tp, sl)

	profitDistance := math.Abs(lv.TP - c.inputs.Price)
	riskDistance := math.Abs(lv.SL - c.inputs.Price)
	if profitDistance <= 0 || riskDistance <= 0 {
		return
	}
	if isLong {
		c.targetRatio = profitDistance / riskDistance
	} else {
		c.targetRatio = riskDistance / profitDistance
	}
}

// SetSide flips the position side. TP/SL reset so the resolver places them
// on the correct sides of entry; the target ratio is kept.
func (c *Calculator) SetSide(s trade.Side) Metrics {
	c.inputs.PositionSide = s
	c.inputs.TP = 0
	c.inputs.SL = 0
	return c.recompute()
}

// SetTargetRatio replaces the target risk/reward ratio.
func (c *Calculator) SetTargetRatio(v float64) Metrics {
	if v > 0 {
		c.targetRatio = v
	}
	return c.recompute()
}

// SetOrderType changes the order type; no derived field depends on it
// outside the simulator.
func (c *Calculator) SetOrderType(t trade.OrderType) Metrics {
	c.inputs.OrderType = t
	return c.recompute()
}

// SetFees replaces both fee rates.
func (c *Calculator) SetFees(maker, taker float64) Metrics {
	c.inputs.MakerFee = math.Max(0, maker)
	c.inputs.TakerFee = math.Max(0, taker)
	return c.recompute()
}

// SetMarginPercent updates the position-sizing slider value, clamped to
// 0-100.
func (c *Calculator) SetMarginPercent(v float64) Metrics {
	c.inputs.MarginPercent = math.Min(100, math.Max(0, v))
	return c.recompute()
}

// Simulate runs the trade simulator over the current snapshot with resolved
// TP/SL levels. Returns nil in the empty-form state.
func (c *Calculator) Simulate() *sim.Result {
	in := c.inputs
	if in.Price <= 0 || in.Quantity <= 0 {
		return nil
	}

	lv := risk.ResolveTpSl(in.Price, in.PositionSide.IsLong(), c.targetRatio, in.TP, in.SL)
	s := sim.New(in.Price, in.Quantity, in.Leverage, in.Margin,
		in.MakerFee, in.TakerFee, lv.TP, lv.SL, in.OrderType)
	r := s.Simulate()
	return &r
}
