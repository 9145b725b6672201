package api

import (
	"errors"
	"net/http"

	"foliotrack/pkg/foliotrack"
)

// ErrorResponse is the JSON shape of an error reply.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// writeErrorResponse maps structured core errors onto HTTP statuses.
func writeErrorResponse(w http.ResponseWriter, httpStatus int, err error) {
	response := ErrorResponse{
		Code:    httpStatus,
		Message: err.Error(),
	}

	var coreErr *foliotrack.Error
	if errors.As(err, &coreErr) {
		response.ErrorCode = string(coreErr.Code)
		httpStatus = mapErrorCodeToHTTPStatus(coreErr.Code)
		response.Code = httpStatus
	}

	writeJSON(w, httpStatus, response)
}

func mapErrorCodeToHTTPStatus(code foliotrack.ErrorCode) int {
	switch code {
	case foliotrack.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case foliotrack.ErrCodeNotFound:
		return http.StatusNotFound
	case foliotrack.ErrCodeDuplicate:
		return http.StatusConflict
	case foliotrack.ErrCodeDatabase, foliotrack.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
