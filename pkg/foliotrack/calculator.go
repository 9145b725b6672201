package foliotrack

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Positions are replayed with the average-cost-basis method: all purchase
// costs for a (account, symbol) pair are pooled and divided by total quantity.
// The replay never fails on economically implausible histories; callers
// needing strict validation apply it before transactions reach these
// functions.

// quantityEpsilon absorbs floating-point drift: quantities and cost bases
// within this distance of zero are clamped to exactly zero after replay.
const quantityEpsilon = 1e-9

// groupKey identifies one position. A structured key avoids delimiter
// collisions between account IDs and symbols.
type groupKey struct {
	AccountID string
	Symbol    string
}

// groupTransactions partitions transactions into per-(account, symbol)
// buckets, preserving relative input order within each bucket. The returned
// key slice is in first-seen order so replay output stays deterministic.
func groupTransactions(transactions []Transaction) (map[groupKey][]Transaction, []groupKey) {
	groups := map[groupKey][]Transaction{}
	var order []groupKey
	for _, t := range transactions {
		key := groupKey{AccountID: t.AccountID, Symbol: t.Symbol}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}
	return groups, order
}

// parseSplitRatio converts "N:M" into the multiplier N/M ("2:1" → 2.0,
// "1:5" → 0.2). Malformed ratios or zero components degrade to 1 (no-op).
func parseSplitRatio(ratio string) float64 {
	parts := strings.Split(ratio, ":")
	if len(parts) != 2 {
		return 1
	}
	numerator, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 1
	}
	denominator, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 1
	}
	if numerator == 0 || denominator == 0 || math.IsNaN(numerator) || math.IsNaN(denominator) {
		return 1
	}
	return numerator / denominator
}

// filterInitialPosition drops every buy dated on or before the most recent
// initial_position transaction in the group. An initial position asserts
// "everything before this date is already captured", so replaying earlier
// buys would double-count quantity and cost. All other types pass through.
func filterInitialPosition(transactions []Transaction) []Transaction {
	var initial *Transaction
	for i := range transactions {
		t := &transactions[i]
		if t.Type != TypeInitialPosition {
			continue
		}
		// Strictly-after comparison keeps the first-seen transaction on
		// date ties, matching a stable descending sort.
		if initial == nil || t.Date.After(initial.Date) {
			initial = t
		}
	}
	if initial == nil {
		return transactions
	}

	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == TypeBuy && !t.Date.After(initial.Date) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// sortChronologically returns a copy sorted ascending by date. The sort is
// stable: transactions sharing a date keep their relative input order, which
// keeps replay reproducible for any input ordering that preserves per-date
// order.
func sortChronologically(transactions []Transaction) []Transaction {
	sorted := append([]Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// calculatePosition folds one filtered, sorted transaction group into a
// Holding snapshot. currentPrice is nil when no live price is known.
func calculatePosition(transactions []Transaction, accountID, symbol string, currentPrice *float64) Holding {
	sorted := sortChronologically(filterInitialPosition(transactions))

	var (
		quantity       float64
		costBasis      float64
		realizedGain   float64
		dividendIncome float64
		currency       string
		firstDate      time.Time
		lastDate       time.Time
	)

	for _, t := range sorted {
		if firstDate.IsZero() {
			firstDate = t.Date
		}
		lastDate = t.Date

		if currency == "" && t.Currency != "" {
			currency = t.Currency
		}

		switch t.Type {
		case TypeInitialPosition:
			quantity += t.Quantity
			costBasis += t.Quantity * t.UnitPrice

		case TypeBuy:
			quantity += t.Quantity
			costBasis += t.Quantity*t.UnitPrice + t.Fees

		case TypeSell:
			avgCostPerShare := 0.0
			if quantity > 0 {
				avgCostPerShare = costBasis / quantity
			}
			costOfSold := avgCostPerShare * t.Quantity
			realizedGain += t.UnitPrice*t.Quantity - costOfSold - t.Fees
			quantity -= t.Quantity
			costBasis -= costOfSold

		case TypeDividend:
			if t.Quantity > 0 && t.UnitPrice > 0 {
				dividendIncome += t.Quantity * t.UnitPrice
			} else {
				dividendIncome += t.TotalAmount
			}

		case TypeSplitForward:
			multiplier := parseSplitRatio(t.SplitRatio)
			if multiplier == 1 {
				break
			}
			// Shares multiply, cost basis stays.
			quantity *= multiplier

		case TypeSplitReverse:
			multiplier := parseSplitRatio(t.SplitRatio)
			if multiplier == 1 {
				break
			}
			oldQuantity := quantity
			newQuantity := math.Floor(oldQuantity * multiplier)

			// Old shares that do not convert into whole new shares.
			converted := newQuantity / multiplier
			notConverted := oldQuantity - converted

			fractionalCostBasis := 0.0
			if oldQuantity > 0 {
				fractionalCostBasis = notConverted / oldQuantity * costBasis
			}

			quantity = newQuantity
			costBasis -= fractionalCostBasis

			// Cash in lieu is a realized gain against the fractional shares.
			if notConverted > 0 && t.CashInLieu > 0 {
				realizedGain += t.CashInLieu - fractionalCostBasis
			}
		}
	}

	if math.Abs(quantity) < quantityEpsilon {
		quantity = 0
	}
	if math.Abs(costBasis) < quantityEpsilon {
		costBasis = 0
	}

	costPerShare := 0.0
	if quantity > 0 {
		costPerShare = costBasis / quantity
	}
	marketValue := 0.0
	unrealizedGain := 0.0
	unrealizedGainPercent := 0.0
	if currentPrice != nil {
		marketValue = quantity * *currentPrice
		unrealizedGain = marketValue - costBasis
		if costBasis > 0 {
			unrealizedGainPercent = unrealizedGain / costBasis * 100
		}
	}

	totalReturn := realizedGain + unrealizedGain + dividendIncome
	totalInvested := costBasis + math.Abs(realizedGain)
	totalReturnPercent := 0.0
	if totalInvested > 0 {
		totalReturnPercent = totalReturn / totalInvested * 100
	}

	return Holding{
		AccountID: accountID,
		Symbol:    symbol,
		Currency:  currency,
		Quantity:  quantity,
		AvgCost: AverageCostMetrics{
			CostBasis:             costBasis,
			CostPerShare:          costPerShare,
			UnrealizedGain:        unrealizedGain,
			UnrealizedGainPercent: unrealizedGainPercent,
		},
		MarketValue:          marketValue,
		CurrentPrice:         currentPrice,
		RealizedGain:         realizedGain,
		DividendIncome:       dividendIncome,
		TotalReturn:          totalReturn,
		TotalReturnPercent:   totalReturnPercent,
		FirstTransactionDate: firstDate,
		LastTransactionDate:  lastDate,
	}
}

// CalculateHoldings replays a full transaction history into current holdings.
// Transactions are grouped by (account, symbol), each group is replayed
// chronologically, and only positions with quantity > 0 are returned; fully
// exited positions are dropped, not reported as closed. Inputs are never
// mutated and the same transaction set always yields identical results.
func CalculateHoldings(transactions []Transaction, prices PriceMap) []Holding {
	groups, order := groupTransactions(transactions)

	holdings := make([]Holding, 0, len(order))
	for _, key := range order {
		var currentPrice *float64
		if price, ok := prices[key.Symbol]; ok {
			currentPrice = &price
		}
		holding := calculatePosition(groups[key], key.AccountID, key.Symbol, currentPrice)
		if holding.Quantity > 0 {
			holdings = append(holdings, holding)
		}
	}
	return holdings
}

// CalculateAccountHoldings replays holdings for a single account.
func CalculateAccountHoldings(transactions []Transaction, accountID string, prices PriceMap) []Holding {
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.AccountID == accountID {
			filtered = append(filtered, t)
		}
	}
	return CalculateHoldings(filtered, prices)
}
