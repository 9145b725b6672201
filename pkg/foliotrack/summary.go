package foliotrack

import (
	"math"

	"github.com/shopspring/decimal"
)

// CalculatePortfolioSummary sums holdings into portfolio-wide totals with a
// per-account breakdown. Expects the quantity>0 holdings produced by
// CalculateHoldings.
func CalculatePortfolioSummary(holdings []Holding) PortfolioSummary {
	var (
		totalMarketValue    float64
		totalCostBasis      float64
		totalRealizedGain   float64
		totalDividendIncome float64
	)
	breakdown := map[string]AccountBreakdown{}

	for _, h := range holdings {
		totalMarketValue += h.MarketValue
		totalCostBasis += h.AvgCost.CostBasis
		totalRealizedGain += h.RealizedGain
		totalDividendIncome += h.DividendIncome

		entry := breakdown[h.AccountID]
		entry.MarketValue += h.MarketValue
		entry.CostBasis += h.AvgCost.CostBasis
		breakdown[h.AccountID] = entry
	}

	totalUnrealizedGain := totalMarketValue - totalCostBasis
	totalUnrealizedGainPercent := 0.0
	if totalCostBasis > 0 {
		totalUnrealizedGainPercent = totalUnrealizedGain / totalCostBasis * 100
	}
	totalReturn := totalRealizedGain + totalUnrealizedGain + totalDividendIncome
	totalInvested := totalCostBasis + math.Abs(totalRealizedGain)
	totalReturnPercent := 0.0
	if totalInvested > 0 {
		totalReturnPercent = totalReturn / totalInvested * 100
	}

	return PortfolioSummary{
		TotalMarketValue:           totalMarketValue,
		TotalCostBasis:             totalCostBasis,
		TotalUnrealizedGain:        totalUnrealizedGain,
		TotalUnrealizedGainPercent: totalUnrealizedGainPercent,
		TotalRealizedGain:          totalRealizedGain,
		TotalDividendIncome:        totalDividendIncome,
		TotalReturn:                totalReturn,
		TotalReturnPercent:         totalReturnPercent,
		HoldingsCount:              len(holdings),
		AccountBreakdown:           breakdown,
	}
}

// SummarizeTransactions totals buy/sell/dividend activity. Amounts accumulate
// through decimals so report totals do not drift.
func SummarizeTransactions(transactions []Transaction) TransactionSummary {
	var buys, sells, dividends decimal.Decimal
	bySymbol := map[string]int{}
	byType := map[TransactionType]int{}

	for _, t := range transactions {
		switch t.Type {
		case TypeBuy:
			buys = buys.Add(decimal.NewFromFloat(t.TotalAmount))
		case TypeSell:
			sells = sells.Add(decimal.NewFromFloat(t.TotalAmount))
		case TypeDividend:
			if t.Quantity > 0 && t.UnitPrice > 0 {
				amount := decimal.NewFromFloat(t.Quantity).Mul(decimal.NewFromFloat(t.UnitPrice))
				dividends = dividends.Add(amount)
			} else {
				dividends = dividends.Add(decimal.NewFromFloat(t.TotalAmount))
			}
		}
		bySymbol[t.Symbol]++
		byType[t.Type]++
	}

	return TransactionSummary{
		TotalBuys:        decimalToFloat(buys),
		TotalSells:       decimalToFloat(sells),
		TotalDividends:   decimalToFloat(dividends),
		TransactionCount: len(transactions),
		BySymbol:         bySymbol,
		ByType:           byType,
	}
}

func decimalToFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(4).Float64()
	return f
}
