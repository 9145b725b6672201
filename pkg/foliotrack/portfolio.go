package foliotrack

import "sort"

// GetPortfolioHistory returns cumulative buy/sell cash flow over time,
// accumulated through decimals to keep running totals exact.
func (c *Core) GetPortfolioHistory(accountID string) ([]PortfolioPoint, error) {
	transactions, err := c.transactionsForReplay(accountID)
	if err != nil {
		return nil, err
	}

	byDate := map[string]Amount{}
	for _, t := range transactions {
		date := t.Date.Format(dateLayout)
		switch t.Type {
		case TypeBuy, TypeInitialPosition:
			byDate[date] = Amount{byDate[date].Add(NewAmount(t.TotalAmount).Decimal)}
		case TypeSell:
			byDate[date] = Amount{byDate[date].Sub(NewAmount(t.TotalAmount).Decimal)}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var cumulative []PortfolioPoint
	var running Amount
	for _, d := range dates {
		running = Amount{running.Add(byDate[d].Decimal)}
		cumulative = append(cumulative, PortfolioPoint{Date: d, Value: running})
	}
	return cumulative, nil
}
