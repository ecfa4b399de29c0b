package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a single (name, unit price, quantity) entry of an order.
// The unit price is taken from the request as-is, it is not looked up in the menu.
type OrderLine struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal returns UnitPrice * Quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a validated checkout request. Lines keep request order.
type Order struct {
	CustomerName  string
	CustomerPhone string
	Lines         []OrderLine
	AmountPaid    decimal.Decimal
}

// Bill is the outcome of pricing an order.
// Change is negative when the customer underpaid.
type Bill struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Change   decimal.Decimal
	Receipt  string
}

// IssuedBill is a bill handed out by the checkout service.
type IssuedBill struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	IssuedAt      time.Time
	Bill
}
