package billing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

const (
	phoneLength     = 10
	defaultItemName = "Unknown"
)

// rawOrder keeps every field undecoded so that absence, null and wrong JSON
// types can be told apart while validating.
type rawOrder struct {
	CustomerName  json.RawMessage `json:"customer_name"`
	CustomerPhone json.RawMessage `json:"customer_phone"`
	Items         json.RawMessage `json:"items"`
	AmountPaid    json.RawMessage `json:"amount_paid"`
}

// ParseOrder decodes and validates a checkout payload.
// Checks run in a fixed order and the first failure is returned as a
// *models.ValidationError: malformed input, missing fields, amount paid,
// phone number, then each line item in turn.
func ParseOrder(data []byte) (models.Order, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return models.Order{}, malformed("request body must be a JSON object")
	}

	var raw rawOrder
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Order{}, malformed("request body must be a JSON object")
	}

	name, err := optionalString(raw.CustomerName, "customer_name")
	if err != nil {
		return models.Order{}, err
	}
	phone, err := optionalString(raw.CustomerPhone, "customer_phone")
	if err != nil {
		return models.Order{}, err
	}
	var items []json.RawMessage
	if !isAbsent(raw.Items) {
		if err := json.Unmarshal(raw.Items, &items); err != nil {
			return models.Order{}, &models.ValidationError{
				Kind:    models.MalformedInput,
				Field:   "items",
				Message: "must be a list",
			}
		}
	}

	switch {
	case name == "":
		return models.Order{}, missing("customer_name")
	case phone == "":
		return models.Order{}, missing("customer_phone")
	case len(items) == 0:
		return models.Order{}, missing("items")
	case isAbsent(raw.AmountPaid):
		return models.Order{}, missing("amount_paid")
	}

	paid, ok := parseNumber(raw.AmountPaid)
	if !ok || paid.IsNegative() {
		return models.Order{}, &models.ValidationError{
			Kind:    models.InvalidAmount,
			Field:   "amount_paid",
			Message: "invalid amount paid",
		}
	}

	if !validPhone(phone) {
		return models.Order{}, &models.ValidationError{
			Kind:    models.InvalidPhone,
			Field:   "customer_phone",
			Message: "phone number must be 10 digits",
		}
	}

	lines := make([]models.OrderLine, 0, len(items))
	for i, item := range items {
		line, err := parseLine(i, item)
		if err != nil {
			return models.Order{}, err
		}
		lines = append(lines, line)
	}

	return models.Order{
		CustomerName:  name,
		CustomerPhone: phone,
		Lines:         lines,
		AmountPaid:    paid,
	}, nil
}

// parseLine applies the defaults of a sparse line item: a missing name is
// "Unknown", a missing price is 0 and a missing quantity is 0.
func parseLine(index int, item json.RawMessage) (models.OrderLine, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return models.OrderLine{}, invalidLine(index, item)
	}

	line := models.OrderLine{Name: defaultItemName, UnitPrice: decimal.Zero}

	if v, ok := fields["name"]; ok {
		if err := json.Unmarshal(v, &line.Name); err != nil || !isString(v) {
			return models.OrderLine{}, invalidLine(index, item)
		}
	}
	if v, ok := fields["price"]; ok {
		price, ok := parseNumber(v)
		if !ok {
			return models.OrderLine{}, invalidLine(index, item)
		}
		line.UnitPrice = price
	}
	if v, ok := fields["quantity"]; ok {
		qty, ok := parseInteger(v)
		if !ok {
			return models.OrderLine{}, invalidLine(index, item)
		}
		line.Quantity = qty
	}
	return line, nil
}

func optionalString(raw json.RawMessage, field string) (string, error) {
	if isAbsent(raw) {
		return "", nil
	}
	var s string
	if !isString(raw) || json.Unmarshal(raw, &s) != nil {
		return "", &models.ValidationError{
			Kind:    models.MalformedInput,
			Field:   field,
			Message: "must be a string",
		}
	}
	return s, nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func isString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

func isNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// parseNumber accepts JSON numbers only; numeric strings such as "12" are rejected.
func parseNumber(raw json.RawMessage) (decimal.Decimal, bool) {
	if !isNumber(raw) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(string(bytes.TrimSpace(raw)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseInteger accepts integral JSON numbers written without a fraction or
// exponent, so 2 is an integer and 2.0 is not.
func parseInteger(raw json.RawMessage) (int, bool) {
	if !isNumber(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func validPhone(phone string) bool {
	if len(phone) != phoneLength {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

func malformed(msg string) error {
	return &models.ValidationError{Kind: models.MalformedInput, Message: msg}
}

func missing(field string) error {
	return &models.ValidationError{
		Kind:    models.MissingField,
		Field:   field,
		Message: "missing required order data",
	}
}

func invalidLine(index int, item json.RawMessage) error {
	return &models.ValidationError{
		Kind:    models.InvalidLineItem,
		Field:   fmt.Sprintf("items[%d]", index),
		Message: fmt.Sprintf("invalid item data: %s", bytes.TrimSpace(item)),
		Raw:     string(bytes.TrimSpace(item)),
	}
}
