package foliotrack

import "testing"

func TestGetPortfolioHistory_Empty(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	points, err := core.GetPortfolioHistory("")
	assertNoError(t, err, "history of empty portfolio")
	if len(points) != 0 {
		t.Errorf("expected no points, got %+v", points)
	}
}

func TestGetPortfolioHistory_CumulativeCashFlow(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "AAPL", Type: TypeBuy, Date: "2024-01-10", Quantity: 10, UnitPrice: 100})
	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "MSFT", Type: TypeBuy, Date: "2024-01-10", Quantity: 5, UnitPrice: 200})
	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "AAPL", Type: TypeSell, Date: "2024-02-15", Quantity: 4, UnitPrice: 120})
	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "NVDA", Type: TypeInitialPosition, Date: "2024-03-01", Quantity: 2, UnitPrice: 500})
	// Dividends are income, not invested cash; they never move the curve.
	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "AAPL", Type: TypeDividend, Date: "2024-03-10", Quantity: 6, UnitPrice: 1})

	points, err := core.GetPortfolioHistory("")
	assertNoError(t, err, "portfolio history")
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d: %+v", len(points), points)
	}

	wantDates := []string{"2024-01-10", "2024-02-15", "2024-03-01"}
	wantValues := []float64{2000, 1520, 2520}
	for i, p := range points {
		if p.Date != wantDates[i] {
			t.Errorf("point %d date = %q, want %q", i, p.Date, wantDates[i])
		}
		got, _ := p.Value.Float64()
		assertFloatEquals(t, got, wantValues[i], "cumulative value at "+p.Date)
	}
}

func TestGetPortfolioHistory_AccountScoped(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	addTx(t, core, AddTransactionRequest{AccountID: "acc1", Symbol: "AAPL", Type: TypeBuy, Date: "2024-01-10", Quantity: 10, UnitPrice: 100})
	addTx(t, core, AddTransactionRequest{AccountID: "acc2", Symbol: "AAPL", Type: TypeBuy, Date: "2024-01-10", Quantity: 50, UnitPrice: 100})

	points, err := core.GetPortfolioHistory("acc1")
	assertNoError(t, err, "acc1 history")
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	got, _ := points[0].Value.Float64()
	assertFloatEquals(t, got, 1000, "acc1 cumulative cash flow")
}
