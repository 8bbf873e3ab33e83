// Package strength scores a proposed trade's risk profile.
//
// Two presets exist and genuinely disagree: the aggregate preset feeds the
// summary badge and skips factors whose inputs are missing; the detailed
// preset feeds the analysis panel, always evaluates all six factors and
// reports per-factor reasons. They also differ in the liquidation-distance
// basis (position size vs entry price) and in their rating bands. Both are
// kept as distinct named presets until one is declared canonical.
package strength

// Summary is the aggregate preset's output.
type Summary struct {
	Score  int
	Rating string
	Color  string
}

// Factor is one scoring dimension's contribution in the detailed preset.
type Factor struct {
	Factor string
	Score  int
	Reason string
}

// Score is the detailed preset's output; Details holds one entry per factor
// in evaluation order.
type Score struct {
	Score   int
	Label   string
	Color   string
	Details []Factor
}

// Input is the metrics bag consumed by the aggregate preset.
type Input struct {
	PositionSize     float64
	LiquidationPrice float64
	StopLossDistance float64
	PotentialProfit  float64
	FeeImpact        float64
	RiskRewardRatio  float64
}

func ratioScore(rrr float64) int {
	switch {
	case rrr < 1.5:
		return -2
	case rrr <= 2.5:
		return 3
	default:
		return 5
	}
}

func stopDistanceScore(distance float64) int {
	switch {
	case distance < 1:
		return -2
	case distance <= 5:
		return 3
	default:
		return -2
	}
}

func liquidationDistanceScore(distance float64) int {
	switch {
	case distance < 5:
		return -3
	case distance <= 15:
		return 2
	default:
		return 4
	}
}

// Aggregate scores the metrics bundle for the summary badge. Factors whose
// inputs are zero are skipped entirely rather than scored at zero.
func Aggregate(m Input) Summary {
	score := 0

	if m.RiskRewardRatio != 0 {
		score += ratioScore(m.RiskRewardRatio)
	}

	if m.LiquidationPrice != 0 && m.PositionSize != 0 {
		// Distance measured against position size, not entry price. The
		// detailed preset uses entry price; both bases are preserved
		// deliberately until one is declared canonical.
		distance := abs((m.LiquidationPrice - m.PositionSize) / m.PositionSize * 100)
		score += liquidationDistanceScore(distance)
	}

	if m.StopLossDistance != 0 {
		score += stopDistanceScore(m.StopLossDistance)
	}

	if m.FeeImpact != 0 && m.PotentialProfit != 0 {
		feeShare := m.FeeImpact / m.PotentialProfit * 100
		switch {
		case feeShare > 10:
			score -= 2
		case feeShare <= 5:
			score += 3
		default:
			score += 2
		}
	}

	return Summary{Score: score, Rating: rating(score), Color: color(score)}
}

func rating(score int) string {
	switch {
	case score < 5:
		return "Very Weak"
	case score < 10:
		return "Weak"
	case score < 15:
		return "Moderate"
	case score < 20:
		return "Strong"
	default:
		return "Very Strong"
	}
}

func color(score int) string {
	switch {
	case score < 5:
		return "red"
	case score < 10:
		return "orange"
	case score < 15:
		return "yellow"
	case score < 20:
		return "green"
	default:
		return "purple"
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
