package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordSetup(SetupRecord{
		ID:               "01TEST",
		Time:             now,
		Side:             "short",
		Price:            100,
		Quantity:         10,
		Leverage:         5,
		Margin:           200,
		LiquidationPrice: 120,
		TP:               80,
		SL:               110,
		RiskReward:       2,
		Score:            8,
		Rating:           "Weak",
	}))
	require.NoError(t, j.RecordSimulation(SimulationRecord{
		ID:           "01SIM",
		Time:         now,
		OrderType:    "limit",
		EntryPrice:   100,
		Leverage:     2,
		MarginUsed:   500,
		PositionSize: 1000,
		Fees:         20,
		ProfitAtTP:   180,
		LossAtSL:     -120,
	}))

	var side string
	var price float64
	row := j.db.QueryRow(`SELECT side, price FROM setups WHERE id = ?`, "01TEST")
	require.NoError(t, row.Scan(&side, &price))
	assert.Equal(t, "short", side)
	assert.InDelta(t, 100.0, price, 1e-9)

	var fees float64
	row = j.db.QueryRow(`SELECT fees FROM simulations WHERE id = ?`, "01SIM")
	require.NoError(t, row.Scan(&fees))
	assert.InDelta(t, 20.0, fees, 1e-9)

	// Duplicate primary keys are rejected.
	err = j.RecordSetup(SetupRecord{ID: "01TEST", Time: now, Side: "long", Rating: "Weak"})
	assert.Error(t, err)
}
