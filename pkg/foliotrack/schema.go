package foliotrack

import "database/sql"

func initDatabase(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS accounts (
			account_id TEXT PRIMARY KEY,
			account_name TEXT NOT NULL,
			broker TEXT,
			account_type TEXT,
			currency TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id TEXT NOT NULL REFERENCES accounts(account_id),
			symbol TEXT NOT NULL,
			type TEXT NOT NULL,
			transaction_date TEXT NOT NULL,
			quantity REAL NOT NULL DEFAULT 0,
			unit_price REAL NOT NULL DEFAULT 0,
			total_amount REAL NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT '',
			fees REAL NOT NULL DEFAULT 0,
			split_ratio TEXT,
			cash_in_lieu REAL NOT NULL DEFAULT 0,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE INDEX IF NOT EXISTS idx_transactions_account_symbol
		ON transactions(account_id, symbol)
	`); err != nil {
		return err
	}
	if err := exec(tx, `
		CREATE INDEX IF NOT EXISTS idx_transactions_date
		ON transactions(transaction_date)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS latest_prices (
			symbol TEXT PRIMARY KEY,
			currency TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL CHECK(price > 0),
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	return tx.Commit()
}

func exec(tx *sql.Tx, query string) error {
	_, err := tx.Exec(query)
	return err
}
