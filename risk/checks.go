package risk

import "github.com/levtools/levcalc/trade"

// minQuantity is the smallest tradable amount.
const minQuantity = 0.0001

// ValidationResult reports whether a proposed trade passes the pre-flight
// business checks. It is a result object, never an error: callers decide
// whether to block the update or merely warn.
type ValidationResult struct {
	Valid   bool
	Message string
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Message: msg}
}

// Validate runs the ordered business checks against a complete input
// snapshot and the caller's available balance. The pipeline itself never
// calls this; it is a gate for the layer accepting user input.
func Validate(in trade.Inputs, availableBalance float64) ValidationResult {
	if in.Price <= 0 {
		return invalid("entry price must be greater than zero")
	}
	if in.Quantity <= 0 {
		return invalid("quantity must be greater than zero")
	}
	if in.Quantity < minQuantity {
		return invalid("quantity is too small to trade")
	}
	if in.Leverage <= 0 || in.Leverage > 100 {
		return invalid("leverage must be between 1x and 100x")
	}
	if in.Margin > availableBalance {
		return invalid("margin cannot exceed available balance")
	}
	if in.TP == in.Price || in.SL == in.Price {
		return invalid("stop loss and take profit cannot be identical to entry price")
	}
	if in.TP == in.SL {
		return invalid("stop loss and take profit must be different from each other")
	}

	if in.PositionSide.IsLong() {
		if in.TP <= in.Price {
			return invalid("take profit must be higher than entry price for a long position")
		}
		if in.SL >= in.Price {
			return invalid("stop loss must be lower than entry price for a long position")
		}
		if in.LiquidationPrice >= in.Price {
			return invalid("liquidation price must be lower than entry price for a long position")
		}
		if in.SL <= in.LiquidationPrice {
			return invalid("stop loss cannot be lower than liquidation price")
		}
	} else {
		if in.TP >= in.Price {
			return invalid("take profit must be lower than entry price for a short position")
		}
		if in.SL <= in.Price {
			return invalid("stop loss must be higher than entry price for a short position")
		}
		if in.LiquidationPrice <= in.Price {
			return invalid("liquidation price must be higher than entry price for a short position")
		}
		if in.SL >= in.LiquidationPrice {
			return invalid("stop loss cannot be higher than liquidation price")
		}
	}

	if in.MaintenanceMargin > in.Margin {
		return invalid("margin must be sufficient to cover maintenance margin")
	}

	return ValidationResult{Valid: true}
}
