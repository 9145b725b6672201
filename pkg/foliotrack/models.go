package foliotrack

import "time"

// TransactionType classifies a portfolio transaction.
type TransactionType string

const (
	TypeInitialPosition TransactionType = "initial_position"
	TypeBuy             TransactionType = "buy"
	TypeSell            TransactionType = "sell"
	TypeDividend        TransactionType = "dividend"
	TypeSplitForward    TransactionType = "split_forward"
	TypeSplitReverse    TransactionType = "split_reverse"
)

var TransactionTypes = []TransactionType{
	TypeInitialPosition,
	TypeBuy,
	TypeSell,
	TypeDividend,
	TypeSplitForward,
	TypeSplitReverse,
}

// TransactionTypeLabels maps transaction types to display labels.
var TransactionTypeLabels = map[TransactionType]string{
	TypeInitialPosition: "Initial Position",
	TypeBuy:             "Buy",
	TypeSell:            "Sell",
	TypeDividend:        "Dividend",
	TypeSplitForward:    "Stock Split (Forward)",
	TypeSplitReverse:    "Stock Split (Reverse)",
}

// Transaction represents one recorded portfolio event. Quantity and UnitPrice
// are required for buy/sell/initial_position; a dividend may carry either
// Quantity×UnitPrice or TotalAmount; SplitRatio ("N:M") and CashInLieu only
// apply to split transactions.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   string          `json:"account_id"`
	Symbol      string          `json:"symbol"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   float64         `json:"unit_price"`
	TotalAmount float64         `json:"total_amount"`
	Currency    string          `json:"currency"`
	Fees        float64         `json:"fees"`
	SplitRatio  string          `json:"split_ratio,omitempty"`
	CashInLieu  float64         `json:"cash_in_lieu,omitempty"`
	Notes       *string         `json:"notes"`
	CreatedAt   *string         `json:"created_at"`
	UpdatedAt   *string         `json:"updated_at"`
}

// AddTransactionRequest defines inputs to record a transaction.
type AddTransactionRequest struct {
	AccountID   string
	Symbol      string
	Type        TransactionType
	Date        string // YYYY-MM-DD, defaults to today
	Quantity    float64
	UnitPrice   float64
	TotalAmount *float64
	Currency    string
	Fees        float64
	SplitRatio  string
	CashInLieu  float64
	AccountName *string
	Notes       *string
}

// TransactionFilter controls transaction queries.
type TransactionFilter struct {
	AccountID string
	Symbol    string
	Type      TransactionType
	Currency  string
	Year      int
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// AverageCostMetrics carries the average-cost-basis figures of a holding.
type AverageCostMetrics struct {
	CostBasis             float64 `json:"cost_basis"`
	CostPerShare          float64 `json:"cost_per_share"`
	UnrealizedGain        float64 `json:"unrealized_gain"`
	UnrealizedGainPercent float64 `json:"unrealized_gain_percent"`
}

// Holding is the replayed position of one (account, symbol) pair.
// Only positions with Quantity > 0 are emitted by CalculateHoldings.
type Holding struct {
	AccountID            string             `json:"account_id"`
	Symbol               string             `json:"symbol"`
	Currency             string             `json:"currency"`
	Quantity             float64            `json:"quantity"`
	AvgCost              AverageCostMetrics `json:"avg_cost"`
	MarketValue          float64            `json:"market_value"`
	CurrentPrice         *float64           `json:"current_price"`
	RealizedGain         float64            `json:"realized_gain"`
	DividendIncome       float64            `json:"dividend_income"`
	TotalReturn          float64            `json:"total_return"`
	TotalReturnPercent   float64            `json:"total_return_percent"`
	FirstTransactionDate time.Time          `json:"first_transaction_date"`
	LastTransactionDate  time.Time          `json:"last_transaction_date"`
}

// AccountBreakdown sums market value and cost basis for one account.
type AccountBreakdown struct {
	MarketValue float64 `json:"market_value"`
	CostBasis   float64 `json:"cost_basis"`
}

// PortfolioSummary aggregates all holdings into portfolio-wide totals.
type PortfolioSummary struct {
	TotalMarketValue           float64                     `json:"total_market_value"`
	TotalCostBasis             float64                     `json:"total_cost_basis"`
	TotalUnrealizedGain        float64                     `json:"total_unrealized_gain"`
	TotalUnrealizedGainPercent float64                     `json:"total_unrealized_gain_percent"`
	TotalRealizedGain          float64                     `json:"total_realized_gain"`
	TotalDividendIncome        float64                     `json:"total_dividend_income"`
	TotalReturn                float64                     `json:"total_return"`
	TotalReturnPercent         float64                     `json:"total_return_percent"`
	HoldingsCount              int                         `json:"holdings_count"`
	AccountBreakdown           map[string]AccountBreakdown `json:"account_breakdown"`
}

// TransactionSummary totals transaction activity for reporting.
type TransactionSummary struct {
	TotalBuys        float64                 `json:"total_buys"`
	TotalSells       float64                 `json:"total_sells"`
	TotalDividends   float64                 `json:"total_dividends"`
	TransactionCount int                     `json:"transaction_count"`
	BySymbol         map[string]int          `json:"by_symbol"`
	ByType           map[TransactionType]int `json:"by_type"`
}

// PriceMap maps an uppercased ticker symbol to its current price.
// A missing entry means "no live price"; holdings degrade to zero market
// value instead of failing.
type PriceMap map[string]float64

// LatestPrice is a stored price quote for a symbol.
type LatestPrice struct {
	Symbol    string  `json:"symbol"`
	Currency  string  `json:"currency"`
	Price     float64 `json:"price"`
	UpdatedAt string  `json:"updated_at"`
}

// Account represents an investment account.
type Account struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Broker      *string `json:"broker"`
	AccountType *string `json:"account_type"`
	Currency    *string `json:"currency"`
	CreatedAt   *string `json:"created_at"`
}

// PortfolioPoint is one point of cumulative buy/sell cash flow.
type PortfolioPoint struct {
	Date  string `json:"date"`
	Value Amount `json:"value"`
}
