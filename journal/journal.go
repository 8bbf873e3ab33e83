// Package journal records evaluated trade setups and simulation reports to
// CSV files or a SQLite database.
package journal

import "time"

// SetupRecord is one evaluated trade setup with its derived metrics.
type SetupRecord struct {
	ID               string
	Time             time.Time
	Side             string
	Price            float64
	Quantity         float64
	Leverage         float64
	Margin           float64
	LiquidationPrice float64
	TP               float64
	SL               float64
	RiskReward       float64
	Score            int
	Rating           string
}

// SimulationRecord is one simulator report.
type SimulationRecord struct {
	ID           string
	Time         time.Time
	OrderType    string
	EntryPrice   float64
	Leverage     float64
	MarginUsed   float64
	PositionSize float64
	Fees         float64
	ProfitAtTP   float64
	LossAtSL     float64
}

type Journal interface {
	RecordSetup(SetupRecord) error
	RecordSimulation(SimulationRecord) error
	Close() error
}
