package foliotrack

import (
	"database/sql"
	"fmt"
	"strings"
)

// AddTransaction validates structural fields, inserts the transaction, and
// returns its ID. Only contract violations are rejected (missing account,
// symbol, or type, unparseable date); economically implausible histories are
// stored as-is and computed through by the engine.
func (c *Core) AddTransaction(req AddTransactionRequest) (int64, error) {
	if req.AccountID == "" {
		return 0, NewError(ErrCodeInvalidInput, "account_id is required")
	}
	if req.Type == "" {
		return 0, NewError(ErrCodeInvalidInput, "type is required")
	}
	if !isValidTransactionType(req.Type) {
		return 0, NewError(ErrCodeInvalidInput, fmt.Sprintf("invalid transaction type: %s", req.Type))
	}
	req.Symbol = normalizeSymbol(req.Symbol)
	if req.Symbol == "" {
		return 0, NewError(ErrCodeInvalidInput, "symbol is required")
	}
	if req.Date == "" {
		req.Date = todayISO()
	}
	if _, err := parseDate(req.Date); err != nil {
		return 0, WrapError(ErrCodeInvalidInput, fmt.Sprintf("invalid date: %s", req.Date), err)
	}
	req.Currency = normalizeCurrency(req.Currency)
	if (req.Type == TypeSplitForward || req.Type == TypeSplitReverse) && strings.TrimSpace(req.SplitRatio) == "" {
		return 0, NewError(ErrCodeInvalidInput, "split_ratio is required for split transactions")
	}

	totalAmount := NewAmount(req.Quantity).Mul(NewAmount(req.UnitPrice).Decimal)
	if req.TotalAmount != nil {
		totalAmount = NewAmount(*req.TotalAmount).Decimal
	}

	tx, err := c.db.Begin()
	if err != nil {
		return 0, WrapError(ErrCodeDatabase, "begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := ensureAccountTx(tx, req.AccountID, req.AccountName); err != nil {
		return 0, WrapError(ErrCodeDatabase, "ensure account", err)
	}

	result, err := tx.Exec(`
		INSERT INTO transactions (
			account_id, symbol, type, transaction_date,
			quantity, unit_price, total_amount, currency,
			fees, split_ratio, cash_in_lieu, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.AccountID,
		req.Symbol,
		string(req.Type),
		req.Date,
		NewAmount(req.Quantity),
		NewAmount(req.UnitPrice),
		Amount{totalAmount},
		req.Currency,
		NewAmount(req.Fees),
		nullString(stringPtr(req.SplitRatio)),
		NewAmount(req.CashInLieu),
		nullString(req.Notes),
	)
	if err != nil {
		return 0, WrapError(ErrCodeDatabase, "insert transaction", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, WrapError(ErrCodeDatabase, "last insert id", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, WrapError(ErrCodeDatabase, "commit transaction", err)
	}

	c.cache.invalidate()
	return id, nil
}

// GetTransaction fetches a single transaction by ID. Returns nil when the
// transaction does not exist.
func (c *Core) GetTransaction(id int64) (*Transaction, error) {
	row := c.db.QueryRow(selectTransactionColumns+" WHERE id = ?", id)
	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTransactions returns transactions matching the filter, newest first.
// Limit defaults to 100; pass a negative limit for no cap.
func (c *Core) GetTransactions(filter TransactionFilter) ([]Transaction, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := strings.Builder{}
	query.WriteString(selectTransactionColumns)
	query.WriteString(" WHERE 1=1")
	where, params := buildTransactionFilter(filter)
	query.WriteString(where)
	query.WriteString(" ORDER BY transaction_date DESC, id DESC")
	if limit > 0 {
		query.WriteString(" LIMIT ? OFFSET ?")
		params = append(params, limit, offset)
	}

	return c.queryTransactions(query.String(), params)
}

// GetTransactionCount returns the count of transactions matching the filter.
func (c *Core) GetTransactionCount(filter TransactionFilter) (int, error) {
	query := strings.Builder{}
	query.WriteString("SELECT COUNT(*) FROM transactions WHERE 1=1")
	where, params := buildTransactionFilter(filter)
	query.WriteString(where)

	var count int
	if err := c.db.QueryRow(query.String(), params...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetTransactionSummary totals activity for transactions matching the filter.
func (c *Core) GetTransactionSummary(filter TransactionFilter) (TransactionSummary, error) {
	filter.Limit = -1
	transactions, err := c.GetTransactions(filter)
	if err != nil {
		return TransactionSummary{}, err
	}
	return SummarizeTransactions(transactions), nil
}

// DeleteTransaction deletes a transaction by ID.
func (c *Core) DeleteTransaction(id int64) (bool, error) {
	result, err := c.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		c.cache.invalidate()
	}
	return affected > 0, nil
}

// transactionsForReplay loads the full (optionally per-account) history in
// insertion order, which the engine's stable sort uses as the date tie-break.
func (c *Core) transactionsForReplay(accountID string) ([]Transaction, error) {
	query := selectTransactionColumns + " WHERE 1=1"
	params := []any{}
	if accountID != "" {
		query += " AND account_id = ?"
		params = append(params, accountID)
	}
	query += " ORDER BY id ASC"
	return c.queryTransactions(query, params)
}

const selectTransactionColumns = `
	SELECT
		id, account_id, symbol, type, transaction_date,
		quantity, unit_price, total_amount, currency,
		fees, split_ratio, cash_in_lieu, notes, created_at, updated_at
	FROM transactions
`

func buildTransactionFilter(filter TransactionFilter) (string, []any) {
	where := strings.Builder{}
	params := []any{}
	if filter.AccountID != "" {
		where.WriteString(" AND account_id = ?")
		params = append(params, filter.AccountID)
	}
	if filter.Symbol != "" {
		where.WriteString(" AND symbol = ?")
		params = append(params, normalizeSymbol(filter.Symbol))
	}
	if filter.Type != "" {
		where.WriteString(" AND type = ?")
		params = append(params, string(filter.Type))
	}
	if filter.Currency != "" {
		where.WriteString(" AND currency = ?")
		params = append(params, normalizeCurrency(filter.Currency))
	}
	if filter.Year > 0 {
		where.WriteString(" AND strftime('%Y', transaction_date) = ?")
		params = append(params, fmt.Sprintf("%04d", filter.Year))
	}
	if filter.StartDate != "" {
		where.WriteString(" AND transaction_date >= ?")
		params = append(params, filter.StartDate)
	}
	if filter.EndDate != "" {
		where.WriteString(" AND transaction_date <= ?")
		params = append(params, filter.EndDate)
	}
	return where.String(), params
}

func (c *Core) queryTransactions(query string, params []any) ([]Transaction, error) {
	rows, err := c.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var t Transaction
	var date string
	var splitRatio, notes, createdAt, updatedAt sql.NullString
	if err := row.Scan(
		&t.ID, &t.AccountID, &t.Symbol, &t.Type, &date,
		&t.Quantity, &t.UnitPrice, &t.TotalAmount, &t.Currency,
		&t.Fees, &splitRatio, &t.CashInLieu, &notes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: parse date %q: %w", t.ID, date, err)
	}
	t.Date = parsed
	if splitRatio.Valid {
		t.SplitRatio = splitRatio.String
	}
	if notes.Valid {
		t.Notes = &notes.String
	}
	if createdAt.Valid {
		t.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		t.UpdatedAt = &updatedAt.String
	}
	return &t, nil
}
