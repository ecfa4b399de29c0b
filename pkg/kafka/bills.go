package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

// BillIssued is the event written for every bill handed out at checkout.
type BillIssued struct {
	BillID        string    `json:"bill_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Subtotal      string    `json:"subtotal"`
	GST           string    `json:"gst"`
	Total         string    `json:"total_amount"`
	Change        string    `json:"change"`
	IssuedAt      time.Time `json:"issued_at"`
}

// BillPublisher sends BillIssued events keyed by bill id.
type BillPublisher struct {
	writer MessageWriter
}

func NewBillPublisher(writer MessageWriter) *BillPublisher {
	return &BillPublisher{writer: writer}
}

func (p *BillPublisher) PublishBill(ctx context.Context, bill models.IssuedBill) error {
	ev := BillIssued{
		BillID:        bill.ID,
		CustomerName:  bill.CustomerName,
		CustomerPhone: bill.CustomerPhone,
		Subtotal:      bill.Subtotal.StringFixed(2),
		GST:           bill.Tax.StringFixed(2),
		Total:         bill.Total.StringFixed(2),
		Change:        bill.Change.StringFixed(2),
		IssuedAt:      bill.IssuedAt,
	}
	if err := PublishJSON(ctx, p.writer, bill.ID, ev); err != nil {
		return fmt.Errorf("publish bill %s: %w", bill.ID, err)
	}
	return nil
}

func (p *BillPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
