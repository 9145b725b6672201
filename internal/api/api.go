package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"foliotrack/pkg/foliotrack"
)

// NewRouter builds the HTTP API router.
func NewRouter(core *foliotrack.Core, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	h := &handler{core: core}

	r.Get("/api/health", h.health)

	// Holdings and portfolio
	r.Get("/api/holdings", h.getHoldings)
	r.Get("/api/portfolio/summary", h.getPortfolioSummary)
	r.Get("/api/portfolio/history", h.getPortfolioHistory)

	// Transactions
	r.Get("/api/transactions", h.getTransactions)
	r.Get("/api/transactions/summary", h.getTransactionSummary)
	r.Post("/api/transactions", h.addTransaction)
	r.Delete("/api/transactions/{id}", h.deleteTransaction)

	// Accounts
	r.Get("/api/accounts", h.getAccounts)
	r.Post("/api/accounts", h.addAccount)
	r.Delete("/api/accounts/{id}", h.deleteAccount)

	// Prices
	r.Get("/api/prices", h.getPrices)
	r.Put("/api/prices/{symbol}", h.updatePrice)

	return r
}

type handler struct {
	core *foliotrack.Core
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
