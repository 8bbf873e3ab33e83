// Package sim runs a single what-if simulation of a leveraged trade:
// construct once with a resolved input snapshot, then Simulate.
package sim

import "github.com/levtools/levcalc/trade"

// maintenanceMarginRate mirrors the 0.5% flat requirement used by the
// position metrics.
const maintenanceMarginRate = 0.005

// Result is the simulation report. The fully-margined notional
// (margin x leverage) is the position size here, not price x quantity.
type Result struct {
	EntryPrice   float64
	Leverage     float64
	MarginUsed   float64
	PositionSize float64
	MarketFee    float64
	LimitFee     float64
	ProfitAtTP   float64
	LossAtSL     float64
}

// Simulator is a single-use value object; it holds no state beyond its
// construction snapshot.
type Simulator struct {
	EntryPrice   float64
	Quantity     float64
	Leverage     float64
	Margin       float64
	TP           float64
	SL           float64
	OrderType    trade.OrderType
	PositionSize float64

	makerFee float64 // fraction, converted from percent at construction
	takerFee float64
}

// New builds a simulator. Maker and taker rates are percent figures (6 means
// 6%) and are converted to fractions here; this constructor is the only
// place in the system that converts fee units.
func New(price, quantity, leverage, margin, makerFeePct, takerFeePct, tp, sl float64, orderType trade.OrderType) *Simulator {
	return &Simulator{
		EntryPrice:   price,
		Quantity:     quantity,
		Leverage:     leverage,
		Margin:       margin,
		TP:           tp,
		SL:           sl,
		OrderType:    orderType,
		PositionSize: margin * leverage,
		makerFee:     makerFeePct / 100,
		takerFee:     takerFeePct / 100,
	}
}

// Fees returns the fee for the order type: taker for market orders, maker
// otherwise.
func (s *Simulator) Fees() float64 {
	rate := s.makerFee
	if s.OrderType == trade.Market {
		rate = s.takerFee
	}
	return s.PositionSize * rate
}

// PnL is the profit or loss at an exit price, excluding fees.
func (s *Simulator) PnL(exitPrice float64) float64 {
	return s.Quantity * (exitPrice - s.EntryPrice)
}

// MaintenanceMargin is the minimum collateral for the simulated notional.
func (s *Simulator) MaintenanceMargin() float64 {
	return s.PositionSize * maintenanceMarginRate
}

// LiquidationPrice estimates where remaining margin is exhausted for the
// fully-margined notional.
func (s *Simulator) LiquidationPrice() float64 {
	if s.EntryPrice <= 0 || s.PositionSize <= 0 {
		return 0
	}
	unitsHeld := s.PositionSize / s.EntryPrice
	return s.EntryPrice - (s.Margin-s.MaintenanceMargin())/unitsHeld
}

// Simulate produces the report: fee line items split by order type and net
// PnL at the take-profit and stop-loss levels.
func (s *Simulator) Simulate() Result {
	fees := s.Fees()

	r := Result{
		EntryPrice:   s.EntryPrice,
		Leverage:     s.Leverage,
		MarginUsed:   s.Margin,
		PositionSize: s.PositionSize,
		ProfitAtTP:   s.PnL(s.TP) - fees,
		LossAtSL:     s.PnL(s.SL) - fees,
	}
	switch s.OrderType {
	case trade.Market:
		r.MarketFee = fees
	case trade.Limit:
		r.LimitFee = fees
	}
	return r
}

// RequiredMargin is the collateral needed for a position at the given
// leverage.
func RequiredMargin(price, quantity, leverage float64) float64 {
	if leverage <= 0 {
		return 0
	}
	return price * quantity / leverage
}

// RequiredLeverage is the leverage implied by committing the given margin.
func RequiredLeverage(price, quantity, margin float64) float64 {
	if margin <= 0 {
		return 0
	}
	return price * quantity / margin
}
