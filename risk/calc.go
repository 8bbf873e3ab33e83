package risk

// maintenanceMarginRate is the flat 0.5% maintenance requirement applied to
// the position notional.
const maintenanceMarginRate = 0.005

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// PositionMetrics are the leverage-derived figures for a proposed position.
type PositionMetrics struct {
	PositionSize      float64
	Margin            float64
	MaintenanceMargin float64
	LiquidationPrice  float64
}

// Position computes size, margin, maintenance margin and liquidation price.
//
// A zero price or quantity is the empty-form state and yields an all-zero
// result rather than an error. Leverage below 1x is not a supported trading
// mode: the position size is still reported but margin, maintenance margin
// and liquidation price collapse to zero.
func Position(price, quantity, leverage float64, isLong bool) PositionMetrics {
	if price <= 0 || quantity <= 0 {
		return PositionMetrics{}
	}

	size := price * quantity
	if leverage < 1 {
		return PositionMetrics{PositionSize: size}
	}

	liquidation := price * (1 + 1/leverage)
	if isLong {
		liquidation = price * (1 - 1/leverage)
	}

	return PositionMetrics{
		PositionSize:      size,
		Margin:            size / leverage,
		MaintenanceMargin: size * maintenanceMarginRate,
		LiquidationPrice:  liquidation,
	}
}

// RiskMetrics describe the distance and currency exposure of the stop and
// take-profit levels relative to entry.
type RiskMetrics struct {
	StopLossDistance   float64 // percent from entry
	TakeProfitDistance float64 // percent from entry
	PotentialLoss      float64 // account currency
	PotentialProfit    float64 // account currency
	RiskRewardRatio    float64
}

// Risk computes the stop/take distances and potential profit and loss for a
// position of the given size. Unset levels (zero) contribute zero, and the
// ratio is zero whenever the potential loss is zero.
func Risk(price, sl, tp, positionSize float64) RiskMetrics {
	if price <= 0 || positionSize <= 0 {
		return RiskMetrics{}
	}

	var m RiskMetrics
	if sl != 0 {
		m.StopLossDistance = abs((price - sl) / price * 100)
		m.PotentialLoss = abs(price-sl) * positionSize
	}
	if tp != 0 {
		m.TakeProfitDistance = abs((price - tp) / price * 100)
		m.PotentialProfit = abs(price-tp) * positionSize
	}
	if m.PotentialLoss > 0 {
		m.RiskRewardRatio = m.PotentialProfit / m.PotentialLoss
	}
	return m
}

// FeeImpact is the combined maker+taker fee estimate used by the strength
// score. The rates are applied as fractions of the position size; this is a
// deliberately conservative round-trip estimate, independent from the
// simulator's order-type-specific fee line.
func FeeImpact(positionSize, makerRate, takerRate float64) float64 {
	return (makerRate + takerRate) * positionSize
}
