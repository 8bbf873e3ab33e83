package risk

import "math"

// defaultRiskPct sizes the default stop at 10% of the entry price; the
// default take-profit sits at that distance times the target ratio.
const defaultRiskPct = 0.1

// Levels is the resolved take-profit / stop-loss pair.
type Levels struct {
	TP          float64
	SL          float64
	ActualRatio float64
}

// roundPrice rounds to 2 decimal places. Resolved levels are rounded before
// any downstream percent math to keep floating-point noise out of distances.
func roundPrice(x float64) float64 {
	return math.Round(x*100) / 100
}

// ResolveTpSl produces usable TP/SL levels from optional user input.
//
// User-supplied levels are clamped to the economically correct side of entry
// for the position side (a long take-profit can never sit below entry, a long
// stop never above it). Unset levels derive from the target risk/reward
// ratio. When both levels came from the user the realized ratio is
// recomputed from the actual distances; otherwise the target ratio is passed
// through. A zero price yields zero levels and the target ratio.
func ResolveTpSl(price float64, isLong bool, targetRatio, userTp, userSl float64) Levels {
	if price <= 0 {
		return Levels{ActualRatio: targetRatio}
	}

	riskAmount := price * defaultRiskPct

	tp := userTp
	if tp > 0 {
		if isLong {
			tp = math.Max(price, tp)
		} else {
			tp = math.Min(price, tp)
		}
	} else if isLong {
		tp = price + riskAmount*targetRatio
	} else {
		tp = price - riskAmount*targetRatio
	}

	sl := userSl
	if sl > 0 {
		if isLong {
			sl = math.Min(price, sl)
		} else {
			sl = math.Max(price, sl)
		}
	} else if isLong {
		sl = price - riskAmount
	} else {
		sl = price + riskAmount
	}

	tp = roundPrice(tp)
	sl = roundPrice(sl)

	ratio := targetRatio
	if userTp > 0 && userSl > 0 {
		profit := tp - price
		loss := price - sl
		if !isLong {
			profit = price - tp
			loss = sl - price
		}
		if loss > 0 {
			ratio = roundPrice(profit / loss)
		}
	}

	return Levels{TP: tp, SL: sl, ActualRatio: ratio}
}
