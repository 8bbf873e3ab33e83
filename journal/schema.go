package journal

const Schema = `
CREATE TABLE IF NOT EXISTS setups (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	side TEXT NOT NULL,
	price REAL NOT NULL,
	quantity REAL NOT NULL,
	leverage REAL NOT NULL,
	margin REAL NOT NULL,
	liquidation_price REAL NOT NULL,
	tp REAL NOT NULL,
	sl REAL NOT NULL,
	risk_reward REAL NOT NULL,
	score INTEGER NOT NULL,
	rating TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS simulations (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	order_type TEXT NOT NULL,
	entry_price REAL NOT NULL,
	leverage REAL NOT NULL,
	margin_used REAL NOT NULL,
	position_size REAL NOT NULL,
	fees REAL NOT NULL,
	profit_at_tp REAL NOT NULL,
	loss_at_sl REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_setups_time ON setups(time);
CREATE INDEX IF NOT EXISTS idx_simulations_time ON simulations(time);
`
