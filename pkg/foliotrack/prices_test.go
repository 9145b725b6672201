package foliotrack

import "testing"

func TestUpdateLatestPrice(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	assertNoError(t, core.UpdateLatestPrice("aapl", "usd", 170.5), "set price")

	p, err := core.GetLatestPrice("AAPL")
	assertNoError(t, err, "get price")
	if p == nil {
		t.Fatal("price not found")
	}
	if p.Symbol != "AAPL" || p.Currency != "USD" {
		t.Errorf("price = %+v", p)
	}
	assertFloatEquals(t, p.Price, 170.5, "price value")

	// Upsert replaces in place.
	assertNoError(t, core.UpdateLatestPrice("AAPL", "USD", 171), "update price")
	prices, err := core.GetLatestPrices()
	assertNoError(t, err, "list prices")
	if len(prices) != 1 {
		t.Fatalf("expected 1 price, got %d", len(prices))
	}
	assertFloatEquals(t, prices[0].Price, 171, "updated price")
}

func TestUpdateLatestPrice_Validation(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	err := core.UpdateLatestPrice("", "USD", 10)
	assertError(t, err, "empty symbol")
	if !IsErrorCode(err, ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}

	assertError(t, core.UpdateLatestPrice("AAPL", "USD", 0), "zero price")
	assertError(t, core.UpdateLatestPrice("AAPL", "USD", -5), "negative price")
}

func TestGetLatestPrice_Missing(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	p, err := core.GetLatestPrice("NOPE")
	assertNoError(t, err, "get missing price")
	if p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

func TestGetPriceMap(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	assertNoError(t, core.UpdateLatestPrice("AAPL", "USD", 170), "set AAPL")
	assertNoError(t, core.UpdateLatestPrice("MSFT", "USD", 300), "set MSFT")

	prices, err := core.GetPriceMap()
	assertNoError(t, err, "price map")
	if len(prices) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prices))
	}
	assertFloatEquals(t, prices["AAPL"], 170, "AAPL price")
	assertFloatEquals(t, prices["MSFT"], 300, "MSFT price")
}
