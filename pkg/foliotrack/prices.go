package foliotrack

import "database/sql"

// UpdateLatestPrice inserts or updates the stored price for a symbol.
// Prices arrive from the caller (manual entry or an external feed upstream
// of this service); the store only accepts positive values.
func (c *Core) UpdateLatestPrice(symbol, currency string, price float64) error {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return NewError(ErrCodeInvalidInput, "symbol is required")
	}
	if price <= 0 {
		return NewError(ErrCodeInvalidInput, "price must be positive")
	}
	_, err := c.db.Exec(`
		INSERT INTO latest_prices (symbol, currency, price, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(symbol) DO UPDATE SET
			currency = excluded.currency,
			price = excluded.price,
			updated_at = CURRENT_TIMESTAMP
	`, symbol, normalizeCurrency(currency), price)
	if err != nil {
		return WrapError(ErrCodeDatabase, "update price", err)
	}
	c.cache.invalidate()
	return nil
}

// GetLatestPrice returns the stored price for a symbol, or nil if none.
func (c *Core) GetLatestPrice(symbol string) (*LatestPrice, error) {
	row := c.db.QueryRow(
		"SELECT symbol, currency, price, updated_at FROM latest_prices WHERE symbol = ?",
		normalizeSymbol(symbol),
	)
	var p LatestPrice
	if err := row.Scan(&p.Symbol, &p.Currency, &p.Price, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetLatestPrices returns all stored prices.
func (c *Core) GetLatestPrices() ([]LatestPrice, error) {
	rows, err := c.db.Query("SELECT symbol, currency, price, updated_at FROM latest_prices ORDER BY symbol")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []LatestPrice
	for rows.Next() {
		var p LatestPrice
		if err := rows.Scan(&p.Symbol, &p.Currency, &p.Price, &p.UpdatedAt); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// GetPriceMap builds the symbol→price lookup consumed by the engine.
func (c *Core) GetPriceMap() (PriceMap, error) {
	prices, err := c.GetLatestPrices()
	if err != nil {
		return nil, err
	}
	result := PriceMap{}
	for _, p := range prices {
		result[p.Symbol] = p.Price
	}
	return result, nil
}
