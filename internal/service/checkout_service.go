package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Cheertaboi/coffee-shop-billing/internal/billing"
	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/metrics"
)

// BillPublisher receives every issued bill. Publishing is best effort.
type BillPublisher interface {
	PublishBill(ctx context.Context, bill models.IssuedBill) error
}

type CheckoutService struct {
	composer  billing.Composer
	publisher BillPublisher
	metrics   *metrics.ServerMetrics
	log       *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewCheckoutService wires a checkout service. publisher and m may be nil.
func NewCheckoutService(composer billing.Composer, publisher BillPublisher, m *metrics.ServerMetrics, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		composer:  composer,
		publisher: publisher,
		metrics:   m,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Checkout validates a raw checkout payload and prices it.
// Validation failures are returned as *models.ValidationError and no bill is produced.
func (s *CheckoutService) Checkout(ctx context.Context, body []byte) (models.IssuedBill, error) {
	order, err := billing.ParseOrder(body)
	if err != nil {
		kind := models.KindOf(err)
		if s.metrics != nil {
			s.metrics.Rejections.WithLabelValues(string(kind)).Inc()
		}
		s.log.DebugContext(ctx, "checkout rejected", "kind", kind, "error", err)
		return models.IssuedBill{}, err
	}

	issued := models.IssuedBill{
		ID:            s.newID(),
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		IssuedAt:      s.now().UTC(),
		Bill:          s.composer.Compose(order),
	}

	if s.metrics != nil {
		s.metrics.BillsIssued.Inc()
		s.metrics.BillTotal.Observe(issued.Total.InexactFloat64())
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBill(ctx, issued); err != nil {
			s.log.WarnContext(ctx, "bill event not published", "bill_id", issued.ID, "error", err)
		}
	}

	s.log.InfoContext(ctx, "bill issued",
		"bill_id", issued.ID,
		"lines", len(order.Lines),
		"total", issued.Total.StringFixed(2),
		"change", issued.Change.StringFixed(2),
	)
	return issued, nil
}
