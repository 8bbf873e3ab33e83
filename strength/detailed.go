package strength

// Detailed scores a trade for the analysis panel. Every factor is evaluated
// regardless of missing inputs and appended to Details in this fixed order:
// risk/reward, leverage, liquidation distance, margin allocation, stop-loss
// distance, fee impact.
func Detailed(price, rrr, leverage, liquidationPrice, marginPercent, sl, fees, potentialProfit float64) Score {
	var details []Factor
	total := 0

	add := func(name string, score int, reason string) {
		details = append(details, Factor{Factor: name, Score: score, Reason: reason})
		total += score
	}

	switch s := ratioScore(rrr); s {
	case -2:
		add("Risk/Reward Ratio", s, "Weak RRR")
	case 3:
		add("Risk/Reward Ratio", s, "Good RRR")
	default:
		add("Risk/Reward Ratio", s, "Strong RRR")
	}

	switch {
	case leverage > 25:
		add("Leverage", -3, "Very Risky")
	case leverage >= 10:
		add("Leverage", 2, "Moderate Risk")
	default:
		add("Leverage", 5, "Safe")
	}

	// Distance measured against entry price here, unlike the aggregate
	// preset's position-size basis.
	liquidationDistance := 0.0
	if price != 0 {
		liquidationDistance = abs((liquidationPrice - price) / price * 100)
	}
	switch s := liquidationDistanceScore(liquidationDistance); s {
	case -3:
		add("Liquidation Distance", s, "High Risk")
	case 2:
		add("Liquidation Distance", s, "Moderate Risk")
	default:
		add("Liquidation Distance", s, "Safe")
	}

	switch {
	case marginPercent > 50:
		add("Margin Allocation", -3, "Overexposed")
	case marginPercent >= 10:
		add("Margin Allocation", 3, "Balanced")
	default:
		add("Margin Allocation", 5, "Conservative")
	}

	slDistance := 0.0
	if price != 0 {
		slDistance = abs((sl - price) / price * 100)
	}
	switch {
	case slDistance < 1:
		add("Stop Loss Distance", -2, "Too Tight")
	case slDistance <= 5:
		add("Stop Loss Distance", 3, "Balanced")
	default:
		add("Stop Loss Distance", -2, "Too Loose")
	}

	feeShare := 0.0
	if potentialProfit != 0 {
		feeShare = fees / potentialProfit * 100
	}
	switch {
	case feeShare > 10:
		add("Fee Impact", -2, "High Impact")
	case feeShare >= 5:
		add("Fee Impact", 2, "Moderate")
	default:
		add("Fee Impact", 3, "Negligible")
	}

	label, color := detailedBand(total)
	return Score{Score: total, Label: label, Color: color, Details: details}
}

// detailedBand uses shifted thresholds relative to the aggregate preset
// (<5, <11, <16, <21), so the same total can land in different buckets.
func detailedBand(score int) (label, color string) {
	switch {
	case score < 5:
		return "Very Weak ❌", "text-red-500"
	case score < 11:
		return "Weak ⚠️", "text-orange-500"
	case score < 16:
		return "Moderate ✅", "text-yellow-500"
	case score < 21:
		return "Strong 💪", "text-green-500"
	default:
		return "Very Strong 🚀", "text-purple-500"
	}
}
