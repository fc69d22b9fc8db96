package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/label"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
)

var errInvalidBody = errors.New("invalid request body")

// statusFor maps domain errors onto HTTP statuses. Workflow state
// conflicts are 409, malformed input is 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrDuplicateCode),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderFinalized),
		errors.Is(err, order.ErrNotPreparing),
		errors.Is(err, order.ErrScanIncomplete),
		errors.Is(err, order.ErrOverScan),
		errors.Is(err, order.ErrCarrierRequired):
		return http.StatusConflict
	case errors.Is(err, errInvalidBody),
		errors.Is(err, order.ErrValidation),
		errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, order.ErrUnknownProduct),
		errors.Is(err, label.ErrUnsupportedLocale),
		errors.Is(err, label.ErrEmptyCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
		respondError(w, status, "internal error")
		return
	}
	respondError(w, status, err.Error())
}
