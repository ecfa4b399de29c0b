package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

// GSTRate is the goods and services tax applied to every subtotal.
var GSTRate = decimal.RequireFromString("0.05")

// Composer prices an order and renders its receipt.
type Composer interface {
	Compose(order models.Order) models.Bill
}

// Standard is the Composer used in production.
type Standard struct{}

func (Standard) Compose(order models.Order) models.Bill {
	return Compose(order)
}

// Compose computes subtotal, tax, total and change for order and formats
// the receipt. Lines with a quantity of zero or less are left out of both
// the totals and the receipt. The result depends on order alone.
func Compose(order models.Order) models.Bill {
	kept := make([]models.OrderLine, 0, len(order.Lines))
	subtotal := decimal.Zero
	for _, line := range order.Lines {
		if line.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(line.LineTotal())
		kept = append(kept, line)
	}

	tax := subtotal.Mul(GSTRate)
	total := subtotal.Add(tax)

	bill := models.Bill{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Change:   order.AmountPaid.Sub(total),
	}
	bill.Receipt = FormatReceipt(order.CustomerName, order.CustomerPhone, kept, order.AmountPaid)
	return bill
}
