package foliotrack

import "testing"

func TestCalculatePortfolioSummary_Empty(t *testing.T) {
	summary := CalculatePortfolioSummary(nil)
	if summary.HoldingsCount != 0 {
		t.Errorf("expected 0 holdings, got %d", summary.HoldingsCount)
	}
	assertFloatEquals(t, summary.TotalMarketValue, 0, "market value")
	assertFloatEquals(t, summary.TotalReturnPercent, 0, "return percent with no invested capital")
	if len(summary.AccountBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", summary.AccountBreakdown)
	}
}

func TestCalculatePortfolioSummary_Totals(t *testing.T) {
	holdings := []Holding{
		{
			AccountID:      "acc1",
			Symbol:         "AAPL",
			MarketValue:    17000,
			AvgCost:        AverageCostMetrics{CostBasis: 15000},
			RealizedGain:   500,
			DividendIncome: 100,
		},
		{
			AccountID:      "acc1",
			Symbol:         "MSFT",
			MarketValue:    3000,
			AvgCost:        AverageCostMetrics{CostBasis: 3300},
			RealizedGain:   -200,
			DividendIncome: 0,
		},
		{
			AccountID:   "acc2",
			Symbol:      "GOOG",
			MarketValue: 1400,
			AvgCost:     AverageCostMetrics{CostBasis: 1000},
		},
	}

	summary := CalculatePortfolioSummary(holdings)
	assertFloatEquals(t, summary.TotalMarketValue, 21400, "total market value")
	assertFloatEquals(t, summary.TotalCostBasis, 19300, "total cost basis")
	assertFloatEquals(t, summary.TotalUnrealizedGain, 2100, "total unrealized gain")
	assertFloatEquals(t, summary.TotalUnrealizedGainPercent, 2100.0/19300.0*100, "unrealized percent")
	assertFloatEquals(t, summary.TotalRealizedGain, 300, "total realized gain")
	assertFloatEquals(t, summary.TotalDividendIncome, 100, "total dividends")
	assertFloatEquals(t, summary.TotalReturn, 2500, "total return")
	assertFloatEquals(t, summary.TotalReturnPercent, 2500.0/(19300.0+300.0)*100, "return percent")
	if summary.HoldingsCount != 3 {
		t.Errorf("holdings count = %d", summary.HoldingsCount)
	}

	acc1 := summary.AccountBreakdown["acc1"]
	assertFloatEquals(t, acc1.MarketValue, 20000, "acc1 market value")
	assertFloatEquals(t, acc1.CostBasis, 18300, "acc1 cost basis")
	acc2 := summary.AccountBreakdown["acc2"]
	assertFloatEquals(t, acc2.MarketValue, 1400, "acc2 market value")
	assertFloatEquals(t, acc2.CostBasis, 1000, "acc2 cost basis")
}

func TestCalculatePortfolioSummary_NegativeRealizedGainInvested(t *testing.T) {
	// totalInvested uses the absolute realized gain.
	holdings := []Holding{
		{
			AccountID:    "acc1",
			Symbol:       "AAPL",
			MarketValue:  900,
			AvgCost:      AverageCostMetrics{CostBasis: 1000},
			RealizedGain: -500,
		},
	}

	summary := CalculatePortfolioSummary(holdings)
	assertFloatEquals(t, summary.TotalReturn, -600, "total return")
	assertFloatEquals(t, summary.TotalReturnPercent, -600.0/1500.0*100, "percent against basis plus |realized|")
}

func TestSummarizeTransactions(t *testing.T) {
	div := engineTx(t, "acc1", "AAPL", TypeDividend, "2024-03-01", 0, 0)
	div.TotalAmount = 50
	buy := engineTx(t, "acc1", "AAPL", TypeBuy, "2024-01-01", 10, 100)
	buy.TotalAmount = 1000
	sell := engineTx(t, "acc1", "AAPL", TypeSell, "2024-02-01", 5, 120)
	sell.TotalAmount = 600
	otherBuy := engineTx(t, "acc2", "MSFT", TypeBuy, "2024-01-01", 1, 300)
	otherBuy.TotalAmount = 300

	summary := SummarizeTransactions([]Transaction{buy, sell, div, otherBuy})
	assertFloatEquals(t, summary.TotalBuys, 1300, "total buys")
	assertFloatEquals(t, summary.TotalSells, 600, "total sells")
	assertFloatEquals(t, summary.TotalDividends, 50, "total dividends")
	if summary.TransactionCount != 4 {
		t.Errorf("transaction count = %d", summary.TransactionCount)
	}
	if summary.BySymbol["AAPL"] != 3 || summary.BySymbol["MSFT"] != 1 {
		t.Errorf("by symbol = %v", summary.BySymbol)
	}
	if summary.ByType[TypeBuy] != 2 || summary.ByType[TypeSell] != 1 || summary.ByType[TypeDividend] != 1 {
		t.Errorf("by type = %v", summary.ByType)
	}
}

func TestSummarizeTransactions_DecimalAccumulation(t *testing.T) {
	// 0.1 added ten times must be exactly 1.0 through decimal accumulation.
	var transactions []Transaction
	for i := 0; i < 10; i++ {
		buy := engineTx(t, "acc1", "AAPL", TypeBuy, "2024-01-01", 1, 0.1)
		buy.TotalAmount = 0.1
		transactions = append(transactions, buy)
	}

	summary := SummarizeTransactions(transactions)
	if summary.TotalBuys != 1.0 {
		t.Errorf("expected exact 1.0, got %v", summary.TotalBuys)
	}
}
