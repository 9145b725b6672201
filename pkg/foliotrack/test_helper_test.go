package foliotrack

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates a temporary database for testing and returns a Core
// instance. The caller should defer cleanup() to remove the temp file.
func setupTestDB(t *testing.T) (*Core, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "foliotrack-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	core, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open test db: %v", err)
	}

	cleanup := func() {
		core.Close()
		os.RemoveAll(tmpDir)
	}

	return core, cleanup
}

// testAccount creates a test account with the given ID.
func testAccount(t *testing.T, core *Core, accountID, accountName string) {
	t.Helper()
	_, err := core.AddAccount(Account{
		AccountID:   accountID,
		AccountName: accountName,
	})
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
}

// addTx records a transaction through the store, failing the test on error.
func addTx(t *testing.T, core *Core, req AddTransactionRequest) int64 {
	t.Helper()
	id, err := core.AddTransaction(req)
	if err != nil {
		t.Fatalf("failed to add %s transaction: %v", req.Type, err)
	}
	return id
}

// day parses a YYYY-MM-DD date for engine test fixtures.
func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

// floatEquals checks if two floats are approximately equal.
func floatEquals(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// assertFloatEquals fails the test if the floats are not approximately equal.
func assertFloatEquals(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if !floatEquals(got, want, 1e-6) {
		t.Errorf("%s: got %.8f, want %.8f", msg, got, want)
	}
}

// assertNoError fails the test if err is not nil.
func assertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// assertError fails the test if err is nil.
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error but got nil", msg)
	}
}
