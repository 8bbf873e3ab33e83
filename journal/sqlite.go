package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordSetup(r SetupRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO setups
		(id, time, side, price, quantity, leverage, margin, liquidation_price, tp, sl, risk_reward, score, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time, r.Side, r.Price, r.Quantity, r.Leverage, r.Margin,
		r.LiquidationPrice, r.TP, r.SL, r.RiskReward, r.Score, r.Rating,
	)
	return err
}

func (j *SQLiteJournal) RecordSimulation(r SimulationRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO simulations
		(id, time, order_type, entry_price, leverage, margin_used, position_size, fees, profit_at_tp, loss_at_sl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time, r.OrderType, r.EntryPrice, r.Leverage, r.MarginUsed,
		r.PositionSize, r.Fees, r.ProfitAtTP, r.LossAtSL,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
