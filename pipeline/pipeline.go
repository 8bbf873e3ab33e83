// Package pipeline composes the position, risk, fee and strength stages into
// one deterministic recomputation over a trade-input snapshot.
package pipeline

import (
	"github.com/levtools/levcalc/risk"
	"github.com/levtools/levcalc/strength"
	"github.com/levtools/levcalc/trade"
)

// DefaultTargetRatio is the target risk/reward used before the user touches
// the TP/SL fields.
const DefaultTargetRatio = 2

// Metrics is the full derived bundle for one input snapshot. It has no
// identity and is recomputed from scratch on every field change.
type Metrics struct {
	PositionSize      float64
	Margin            float64
	MaintenanceMargin float64
	LiquidationPrice  float64

	StopLossDistance   float64
	TakeProfitDistance float64
	PotentialProfit    float64
	PotentialLoss      float64

	// RiskRewardRatio is the realized ratio from the resolved levels, not
	// the caller's target.
	RiskRewardRatio float64

	FeeImpact float64

	TP float64
	SL float64

	Strength strength.Summary
}

// Compute runs the stages in fixed order: position metrics, TP/SL
// resolution, risk metrics over the resolved levels, fee impact, strength.
// Each stage consumes only raw inputs and prior stage outputs.
func Compute(in trade.Inputs, targetRatio float64) Metrics {
	isLong := in.PositionSide.IsLong()

	pm := risk.Position(in.Price, in.Quantity, in.Leverage, isLong)
	lv := risk.ResolveTpSl(in.Price, isLong, targetRatio, in.TP, in.SL)
	rm := risk.Risk(in.Price, lv.SL, lv.TP, pm.PositionSize)
	fee := risk.FeeImpact(pm.PositionSize, in.MakerFee, in.TakerFee)

	// The published ratio is the realized one; when no loss distance
	// exists it falls back to the resolver's ratio (the caller's target).
	ratio := rm.RiskRewardRatio
	if rm.PotentialLoss <= 0 {
		ratio = lv.ActualRatio
	}

	str := strength.Aggregate(strength.Input{
		PositionSize:     pm.PositionSize,
		LiquidationPrice: pm.LiquidationPrice,
		StopLossDistance: rm.StopLossDistance,
		PotentialProfit:  rm.PotentialProfit,
		FeeImpact:        fee,
		RiskRewardRatio:  ratio,
	})

	return Metrics{
		PositionSize:       pm.PositionSize,
		Margin:             pm.Margin,
		MaintenanceMargin:  pm.MaintenanceMargin,
		LiquidationPrice:   pm.LiquidationPrice,
		StopLossDistance:   rm.StopLossDistance,
		TakeProfitDistance: rm.TakeProfitDistance,
		PotentialProfit:    rm.PotentialProfit,
		PotentialLoss:      rm.PotentialLoss,
		RiskRewardRatio:    ratio,
		FeeImpact:          fee,
		TP:                 lv.TP,
		SL:                 lv.SL,
		Strength:           str,
	}
}

// Detailed scores the snapshot with the analysis-panel preset using the
// already-computed metrics.
func Detailed(in trade.Inputs, m Metrics) strength.Score {
	return strength.Detailed(
		in.Price,
		m.RiskRewardRatio,
		in.Leverage,
		m.LiquidationPrice,
		in.MarginPercent,
		m.SL,
		m.FeeImpact,
		m.PotentialProfit,
	)
}
