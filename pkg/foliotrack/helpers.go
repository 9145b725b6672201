package foliotrack

import (
	"database/sql"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func normalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

func isValidTransactionType(t TransactionType) bool {
	for _, v := range TransactionTypes {
		if v == t {
			return true
		}
	}
	return false
}

func todayISO() string {
	return time.Now().UTC().Format(dateLayout)
}

// parseDate accepts YYYY-MM-DD or RFC3339 timestamps. Stored dates are
// normalized to calendar dates before replay.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func nullString(value *string) sql.NullString {
	if value == nil || strings.TrimSpace(*value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func stringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}
