package foliotrack

// GetHoldings replays the stored transaction history (optionally one
// account's) through the calculation engine and returns current holdings.
func (c *Core) GetHoldings(accountID string) ([]Holding, error) {
	if accountID == "" && c.cache != nil {
		if cached, ok := c.cache.getHoldings(); ok {
			return cached, nil
		}
	}

	transactions, err := c.transactionsForReplay(accountID)
	if err != nil {
		return nil, err
	}
	prices, err := c.GetPriceMap()
	if err != nil {
		return nil, err
	}

	holdings := CalculateHoldings(transactions, prices)
	if accountID == "" && c.cache != nil {
		c.cache.setHoldings(holdings)
	}
	return holdings, nil
}

// GetPortfolioSummary aggregates all current holdings into portfolio totals.
func (c *Core) GetPortfolioSummary() (PortfolioSummary, error) {
	if c.cache != nil {
		if cached, ok := c.cache.getSummary(); ok {
			return cached, nil
		}
	}

	holdings, err := c.GetHoldings("")
	if err != nil {
		return PortfolioSummary{}, err
	}

	summary := CalculatePortfolioSummary(holdings)
	if c.cache != nil {
		c.cache.setSummary(summary)
	}
	return summary, nil
}
