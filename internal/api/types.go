package api

import "foliotrack/pkg/foliotrack"

type addTransactionPayload struct {
	AccountID   string   `json:"account_id"`
	Symbol      string   `json:"symbol"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	TotalAmount *float64 `json:"total_amount"`
	Currency    string   `json:"currency"`
	Fees        float64  `json:"fees"`
	SplitRatio  string   `json:"split_ratio"`
	CashInLieu  float64  `json:"cash_in_lieu"`
	AccountName *string  `json:"account_name"`
	Notes       *string  `json:"notes"`
}

type addAccountPayload struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Broker      *string `json:"broker"`
	AccountType *string `json:"account_type"`
	Currency    *string `json:"currency"`
}

type updatePricePayload struct {
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
}

type transactionsResponse struct {
	Items  []foliotrack.Transaction `json:"items"`
	Total  int                      `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}
