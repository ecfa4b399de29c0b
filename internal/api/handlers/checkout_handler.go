package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

const maxCheckoutBody = 1 << 20

// Checkouter prices a raw checkout payload.
type Checkouter interface {
	Checkout(ctx context.Context, body []byte) (models.IssuedBill, error)
}

type CheckoutResponse struct {
	BillID      string  `json:"bill_id"`
	Subtotal    float64 `json:"subtotal"`
	TotalAmount float64 `json:"total_amount"`
	GST         float64 `json:"gst"`
	Change      float64 `json:"change"`
	BillContent string  `json:"bill_content"`
}

type validationErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

type CheckoutHandler struct {
	service Checkouter
	log     *slog.Logger
}

func NewCheckoutHandler(svc Checkouter, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, log: log}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r.Header.Get("Content-Type")) {
		writeJSON(w, http.StatusBadRequest, validationErrorBody{
			Error: "request must be JSON",
			Kind:  string(models.MalformedInput),
		})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckoutBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, validationErrorBody{
			Error: "request body could not be read",
			Kind:  string(models.MalformedInput),
		})
		return
	}

	bill, err := h.service.Checkout(r.Context(), body)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, validationErrorBody{
				Error: ve.Message,
				Kind:  string(ve.Kind),
				Field: ve.Field,
			})
			return
		}
		h.log.ErrorContext(r.Context(), "checkout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, CheckoutResponse{
		BillID:      bill.ID,
		Subtotal:    bill.Subtotal.InexactFloat64(),
		TotalAmount: bill.Total.InexactFloat64(),
		GST:         bill.Tax.InexactFloat64(),
		Change:      bill.Change.InexactFloat64(),
		BillContent: bill.Receipt,
	})
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json"
}
