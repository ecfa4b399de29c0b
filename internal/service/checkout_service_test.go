package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Cheertaboi/coffee-shop-billing/internal/billing"
	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/metrics"
)

const latteOrder = `{"customer_name":"Asha","customer_phone":"1234567890","items":[{"name":"Latte","price":90.0,"quantity":2}],"amount_paid":200}`

type recordingPublisher struct {
	bills []models.IssuedBill
	err   error
}

func (p *recordingPublisher) PublishBill(_ context.Context, bill models.IssuedBill) error {
	p.bills = append(p.bills, bill)
	return p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCheckout(pub BillPublisher) (*CheckoutService, *metrics.ServerMetrics) {
	m := metrics.NewServerMetrics("test", prometheus.NewRegistry())
	svc := NewCheckoutService(billing.Standard{}, pub, m, discardLogger())
	svc.newID = func() string { return "bill-1" }
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC) }
	return svc, m
}

func TestCheckoutService_Checkout(t *testing.T) {
	pub := &recordingPublisher{}
	svc, m := newCheckout(pub)

	bill, err := svc.Checkout(context.Background(), []byte(latteOrder))
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if bill.ID != "bill-1" || bill.CustomerName != "Asha" {
		t.Errorf("unexpected bill header %+v", bill)
	}
	if bill.Total.StringFixed(2) != "189.00" || bill.Change.StringFixed(2) != "11.00" {
		t.Errorf("total = %s, change = %s", bill.Total, bill.Change)
	}
	if len(pub.bills) != 1 || pub.bills[0].ID != "bill-1" {
		t.Errorf("published %v", pub.bills)
	}
	if got := testutil.ToFloat64(m.BillsIssued); got != 1 {
		t.Errorf("bills issued = %v, want 1", got)
	}
}

func TestCheckoutService_Rejection(t *testing.T) {
	pub := &recordingPublisher{}
	svc, m := newCheckout(pub)

	_, err := svc.Checkout(context.Background(), []byte(`{"customer_name":"Asha","customer_phone":"12345","items":[{"name":"Latte","price":90,"quantity":1}],"amount_paid":100}`))
	if !errors.Is(err, models.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
	if len(pub.bills) != 0 {
		t.Error("rejected order was published")
	}
	if got := testutil.ToFloat64(m.Rejections.WithLabelValues(string(models.InvalidPhone))); got != 1 {
		t.Errorf("rejections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.BillsIssued); got != 0 {
		t.Errorf("bills issued = %v, want 0", got)
	}
}

func TestCheckoutService_PublishFailureStillReturnsBill(t *testing.T) {
	svc, _ := newCheckout(&recordingPublisher{err: errors.New("broker down")})

	bill, err := svc.Checkout(context.Background(), []byte(latteOrder))
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if bill.Receipt == "" {
		t.Error("expected a receipt")
	}
}

func TestCheckoutService_NoPublisherNoMetrics(t *testing.T) {
	svc := NewCheckoutService(billing.Standard{}, nil, nil, discardLogger())

	bill, err := svc.Checkout(context.Background(), []byte(latteOrder))
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if bill.ID == "" {
		t.Error("expected a generated bill id")
	}
}
