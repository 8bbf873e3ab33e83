package trade

// Side is the direction of a position.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

func (s Side) IsLong() bool {
	return s == Long
}

// OrderType selects which fee rate applies when the order fills.
type OrderType string

const (
	Market  OrderType = "market"
	Limit   OrderType = "limit"
	Trigger OrderType = "trigger"
)

// PositionType is the margin mode of the position.
type PositionType string

const (
	Isolated PositionType = "isolated"
	Cross    PositionType = "cross"
)

// Inputs is the raw state of a proposed trade. It is owned by the caller and
// passed by value into the pipeline; Margin, MaintenanceMargin and
// LiquidationPrice are derived fields cached here for display only.
//
// MakerFee and TakerFee carry the exchange-style rate figures (0.02, 0.06).
// The aggregate fee term applies them directly; the simulator treats them as
// percentages and divides by 100 at its boundary.
type Inputs struct {
	Price    float64
	Quantity float64
	Leverage float64
	Margin   float64

	MakerFee float64
	TakerFee float64

	// TP and SL are absolute price levels; zero means unset, derive a
	// default from the target risk/reward ratio.
	TP float64
	SL float64

	OrderType    OrderType
	PositionType PositionType

	// MarginPercent is the 0-100 position-sizing slider value.
	MarginPercent float64

	MaintenanceMargin float64
	LiquidationPrice  float64

	PositionSide Side
}

// NewInputs returns the empty-form defaults.
func NewInputs() Inputs {
	return Inputs{
		Leverage:     2,
		MakerFee:     0.02,
		TakerFee:     0.06,
		OrderType:    Market,
		PositionType: Isolated,
		PositionSide: Long,
	}
}
