package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"foliotrack/pkg/foliotrack"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getHoldings(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	result, err := h.core.GetHoldings(accountID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.GetPortfolioSummary()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getPortfolioHistory(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	result, err := h.core.GetPortfolioHistory(accountID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := foliotrack.TransactionFilter{
		AccountID: query.Get("account_id"),
		Symbol:    query.Get("symbol"),
		Type:      foliotrack.TransactionType(query.Get("type")),
		Currency:  query.Get("currency"),
		Year:      parseInt(query.Get("year")),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Limit:     parseIntDefault(query.Get("limit"), 100),
		Offset:    parseIntDefault(query.Get("offset"), 0),
	}
	result, err := h.core.GetTransactions(filter)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if query.Get("paged") != "1" {
		writeJSON(w, http.StatusOK, result)
		return
	}
	total, err := h.core.GetTransactionCount(filter)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionsResponse{
		Items:  result,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *handler) getTransactionSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := foliotrack.TransactionFilter{
		AccountID: query.Get("account_id"),
		Symbol:    query.Get("symbol"),
		Currency:  query.Get("currency"),
		Year:      parseInt(query.Get("year")),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	result, err := h.core.GetTransactionSummary(filter)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	var payload addTransactionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.core.AddTransaction(foliotrack.AddTransactionRequest{
		AccountID:   payload.AccountID,
		Symbol:      payload.Symbol,
		Type:        foliotrack.TransactionType(payload.Type),
		Date:        payload.Date,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
		TotalAmount: payload.TotalAmount,
		Currency:    payload.Currency,
		Fees:        payload.Fees,
		SplitRatio:  payload.SplitRatio,
		CashInLieu:  payload.CashInLieu,
		AccountName: payload.AccountName,
		Notes:       payload.Notes,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, foliotrack.NewError(foliotrack.ErrCodeInvalidInput, "invalid transaction id"))
		return
	}
	deleted, err := h.core.DeleteTransaction(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		writeErrorResponse(w, http.StatusNotFound, foliotrack.NewError(foliotrack.ErrCodeNotFound, "transaction not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.GetAccounts()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) addAccount(w http.ResponseWriter, r *http.Request) {
	var payload addAccountPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	ok, err := h.core.AddAccount(foliotrack.Account{
		AccountID:   payload.AccountID,
		AccountName: payload.AccountName,
		Broker:      payload.Broker,
		AccountType: payload.AccountType,
		Currency:    payload.Currency,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"created": ok})
}

func (h *handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	deleted, message, err := h.core.DeleteAccount(accountID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	status := http.StatusOK
	if !deleted {
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]any{"deleted": deleted, "message": message})
}

func (h *handler) getPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.GetLatestPrices()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	var payload updatePricePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := h.core.UpdateLatestPrice(symbol, payload.Currency, payload.Price); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func parseInt(value string) int {
	if value == "" {
		return 0
	}
	i, _ := strconv.Atoi(value)
	return i
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}
