package models

import "github.com/shopspring/decimal"

// MenuItem is one row of the menu_items table.
type MenuItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
