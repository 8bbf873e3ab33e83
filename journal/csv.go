package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	setups *csv.Writer
	sims   *csv.Writer
	sf, mf *os.File
}

func NewCSV(setupsPath, simulationsPath string) (*CSVJournal, error) {
	sf, err := os.Create(setupsPath)
	if err != nil {
		return nil, err
	}
	mf, err := os.Create(simulationsPath)
	if err != nil {
		return nil, err
	}

	sw := csv.NewWriter(sf)
	mw := csv.NewWriter(mf)

	if err := sw.Write([]string{"id", "time", "side", "price", "quantity", "leverage", "margin", "liquidation_price", "tp", "sl", "risk_reward", "score", "rating"}); err != nil {
		return nil, err
	}
	if err := mw.Write([]string{"id", "time", "order_type", "entry_price", "leverage", "margin_used", "position_size", "fees", "profit_at_tp", "loss_at_sl"}); err != nil {
		return nil, err
	}

	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}
	mw.Flush()
	if err := mw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{sw, mw, sf, mf}, nil
}

func (j *CSVJournal) RecordSetup(r SetupRecord) error {
	err := j.setups.Write([]string{
		r.ID,
		r.Time.Format(time.RFC3339),
		r.Side,
		f(r.Price),
		f(r.Quantity),
		f(r.Leverage),
		f(r.Margin),
		f(r.LiquidationPrice),
		f(r.TP),
		f(r.SL),
		f(r.RiskReward),
		strconv.Itoa(r.Score),
		r.Rating,
	})
	if err != nil {
		return err
	}
	j.setups.Flush()
	return j.setups.Error()
}

func (j *CSVJournal) RecordSimulation(r SimulationRecord) error {
	err := j.sims.Write([]string{
		r.ID,
		r.Time.Format(time.RFC3339),
		r.OrderType,
		f(r.EntryPrice),
		f(r.Leverage),
		f(r.MarginUsed),
		f(r.PositionSize),
		f(r.Fees),
		f(r.ProfitAtTP),
		f(r.LossAtSL),
	})
	if err != nil {
		return err
	}
	j.sims.Flush()
	return j.sims.Error()
}

func (j *CSVJournal) Close() error {
	j.setups.Flush()
	if err := j.setups.Error(); err != nil {
		return err
	}
	j.sims.Flush()
	if err := j.sims.Error(); err != nil {
		return err
	}

	if err := j.sf.Close(); err != nil {
		return err
	}
	return j.mf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
