package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

const (
	receiptWidth   = 30
	currencySymbol = "₹"
	gstRateFloat   = 0.05
)

var (
	doubleRule = strings.Repeat("=", receiptWidth)
	singleRule = strings.Repeat("-", receiptWidth)
)

// FormatReceipt renders the printable bill. lines must already exclude
// items that were not charged.
//
// Printed amounts are recomputed in float64 and rounded from their binary
// value, so receipts match those issued by the till's float arithmetic
// even where the exact decimal totals round differently.
func FormatReceipt(name, phone string, lines []models.OrderLine, paid decimal.Decimal) string {
	out := make([]string, 0, 18+len(lines))
	out = append(out,
		doubleRule,
		"      COFFEE SHOP BILL      ",
		doubleRule,
		"Name: "+name,
		"Phone: "+phone,
		singleRule,
		"Item              Qty   Price Total",
		singleRule,
	)

	subtotal := 0.0
	for _, line := range lines {
		price := line.UnitPrice.InexactFloat64()
		lineTotal := price * float64(line.Quantity)
		subtotal += lineTotal
		out = append(out, fmt.Sprintf("%-16sx%-4d%7.2f %7.2f", line.Name, line.Quantity, price, lineTotal))
	}
	gst := subtotal * gstRateFloat
	total := subtotal + gst
	amountPaid := paid.InexactFloat64()
	change := amountPaid - total

	out = append(out,
		singleRule,
		amountLine("Subtotal: ", 18, subtotal),
		amountLine("GST (5%): ", 18, gst),
		amountLine("TOTAL: ", 21, total),
		singleRule,
		amountLine("Amount Paid: ", 15, amountPaid),
		amountLine("Change Due: ", 16, change),
		doubleRule,
		"    THANK YOU FOR YOUR VISIT!   ",
		doubleRule,
	)
	return strings.Join(out, "\n")
}

func amountLine(label string, pad int, amount float64) string {
	return fmt.Sprintf("%s%s%s%7.2f", label, strings.Repeat(" ", pad), currencySymbol, amount)
}
