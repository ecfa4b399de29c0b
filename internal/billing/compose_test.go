package billing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompose_Latte(t *testing.T) {
	order := models.Order{
		CustomerName:  "Asha",
		CustomerPhone: "1234567890",
		Lines:         []models.OrderLine{{Name: "Latte", UnitPrice: dec("90.0"), Quantity: 2}},
		AmountPaid:    dec("200"),
	}

	bill := Compose(order)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"subtotal", bill.Subtotal, "180.00"},
		{"tax", bill.Tax, "9.00"},
		{"total", bill.Total, "189.00"},
		{"change", bill.Change, "11.00"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	want := strings.Join([]string{
		"==============================",
		"      COFFEE SHOP BILL      ",
		"==============================",
		"Name: Asha",
		"Phone: 1234567890",
		"------------------------------",
		"Item              Qty   Price Total",
		"------------------------------",
		"Latte           x2     90.00  180.00",
		"------------------------------",
		"Subtotal: " + strings.Repeat(" ", 18) + "₹ 180.00",
		"GST (5%): " + strings.Repeat(" ", 18) + "₹   9.00",
		"TOTAL: " + strings.Repeat(" ", 21) + "₹ 189.00",
		"------------------------------",
		"Amount Paid: " + strings.Repeat(" ", 15) + "₹ 200.00",
		"Change Due: " + strings.Repeat(" ", 16) + "₹  11.00",
		"==============================",
		"    THANK YOU FOR YOUR VISIT!   ",
		"==============================",
	}, "\n")
	if bill.Receipt != want {
		t.Errorf("receipt mismatch\n got:\n%s\nwant:\n%s", bill.Receipt, want)
	}
}

func TestCompose_ZeroQuantityOnly(t *testing.T) {
	order := models.Order{
		CustomerName:  "Asha",
		CustomerPhone: "1234567890",
		Lines:         []models.OrderLine{{Name: "Milk Tea", UnitPrice: dec("20.0"), Quantity: 0}},
		AmountPaid:    dec("0"),
	}

	bill := Compose(order)

	if !bill.Subtotal.IsZero() || !bill.Tax.IsZero() || !bill.Total.IsZero() {
		t.Fatalf("expected zero totals, got %s %s %s", bill.Subtotal, bill.Tax, bill.Total)
	}
	if strings.Contains(bill.Receipt, "Milk Tea") {
		t.Errorf("receipt lists a zero-quantity line:\n%s", bill.Receipt)
	}
}

func TestCompose_SkipsNonPositiveLines(t *testing.T) {
	order := models.Order{
		CustomerName:  "Asha",
		CustomerPhone: "1234567890",
		Lines: []models.OrderLine{
			{Name: "Americano", UnitPrice: dec("85"), Quantity: 1},
			{Name: "Milkshake", UnitPrice: dec("80"), Quantity: -2},
			{Name: "Flat White", UnitPrice: dec("50"), Quantity: 3},
		},
		AmountPaid: dec("100"),
	}

	bill := Compose(order)

	if !bill.Subtotal.Equal(dec("235")) {
		t.Errorf("subtotal = %s, want 235", bill.Subtotal)
	}
	if !bill.Total.Equal(bill.Subtotal.Add(bill.Subtotal.Mul(GSTRate))) {
		t.Errorf("total %s != subtotal + 5%%", bill.Total)
	}
	if strings.Contains(bill.Receipt, "Milkshake") {
		t.Errorf("receipt lists a negative-quantity line")
	}
	americano := strings.Index(bill.Receipt, "Americano")
	flatWhite := strings.Index(bill.Receipt, "Flat White")
	if americano < 0 || flatWhite < 0 || americano > flatWhite {
		t.Errorf("receipt lines out of order:\n%s", bill.Receipt)
	}
}

func TestCompose_Underpayment(t *testing.T) {
	order := models.Order{
		CustomerName:  "Asha",
		CustomerPhone: "1234567890",
		Lines:         []models.OrderLine{{Name: "Cappuccino", UnitPrice: dec("100"), Quantity: 1}},
		AmountPaid:    dec("50"),
	}

	bill := Compose(order)

	if !bill.Change.Equal(dec("-55")) {
		t.Errorf("change = %s, want -55", bill.Change)
	}
	if !strings.Contains(bill.Receipt, "Change Due: "+strings.Repeat(" ", 16)+"₹ -55.00") {
		t.Errorf("receipt does not show negative change:\n%s", bill.Receipt)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	body := `{"customer_name":"Asha","customer_phone":"1234567890","items":[{"name":"Strawberry Cream","price":80,"quantity":3},{"name":"Vanilla Bean","price":40,"quantity":1}],"amount_paid":500}`
	order, err := ParseOrder([]byte(body))
	if err != nil {
		t.Fatalf("ParseOrder: %v", err)
	}

	first := Compose(order).Receipt
	second := Standard{}.Compose(order).Receipt
	if first != second {
		t.Errorf("receipts differ:\n%s\n---\n%s", first, second)
	}
}

func TestFormatReceipt_LongItemName(t *testing.T) {
	line := models.OrderLine{Name: "Strawberry Cream", UnitPrice: dec("80"), Quantity: 12}
	got := FormatReceipt("Asha", "1234567890", []models.OrderLine{line}, dec("0"))

	if !strings.Contains(got, "\nStrawberry Creamx12    80.00  960.00\n") {
		t.Errorf("unexpected item line in:\n%s", got)
	}
}

func TestCompose_ReceiptRoundsLikeFloatTill(t *testing.T) {
	body := `{"customer_name":"Asha","customer_phone":"1234567890","items":[{"name":"Biscotti","price":2.5,"quantity":1}],"amount_paid":5}`
	order, err := ParseOrder([]byte(body))
	if err != nil {
		t.Fatalf("ParseOrder: %v", err)
	}

	bill := Compose(order)

	if !bill.Tax.Equal(dec("0.125")) || !bill.Total.Equal(dec("2.625")) {
		t.Errorf("tax = %s, total = %s", bill.Tax, bill.Total)
	}
	for _, want := range []string{
		"Biscotti        x1      2.50    2.50",
		"Subtotal: " + strings.Repeat(" ", 18) + "₹   2.50",
		"GST (5%): " + strings.Repeat(" ", 18) + "₹   0.12",
		"TOTAL: " + strings.Repeat(" ", 21) + "₹   2.62",
		"Amount Paid: " + strings.Repeat(" ", 15) + "₹   5.00",
		"Change Due: " + strings.Repeat(" ", 16) + "₹   2.38",
	} {
		if !strings.Contains(bill.Receipt, want) {
			t.Errorf("receipt missing %q:\n%s", want, bill.Receipt)
		}
	}
}

func TestFormatReceipt_ThirdDecimalPrice(t *testing.T) {
	line := models.OrderLine{Name: "Sugar", UnitPrice: dec("0.125"), Quantity: 1}
	got := FormatReceipt("Asha", "1234567890", []models.OrderLine{line}, dec("1"))

	if !strings.Contains(got, "\nSugar           x1      0.12    0.12\n") {
		t.Errorf("unexpected item line in:\n%s", got)
	}
}
