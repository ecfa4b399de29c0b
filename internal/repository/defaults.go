package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

// DefaultMenu is written to an empty menu table at startup.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Americano", Price: decimal.NewFromInt(85)},
		{Name: "Caramel", Price: decimal.NewFromInt(90)},
		{Name: "Cappuccino", Price: decimal.NewFromInt(100)},
		{Name: "Coffee Jelly", Price: decimal.NewFromInt(90)},
		{Name: "Latte", Price: decimal.NewFromInt(90)},
		{Name: "Strawberry Cream", Price: decimal.NewFromInt(80)},
		{Name: "Mochaccino", Price: decimal.NewFromInt(50)},
		{Name: "Vanilla Bean", Price: decimal.NewFromInt(40)},
		{Name: "Long Black", Price: decimal.NewFromInt(60)},
		{Name: "Milkshake", Price: decimal.NewFromInt(80)},
		{Name: "Flat White", Price: decimal.NewFromInt(50)},
		{Name: "Milk Tea", Price: decimal.NewFromInt(20)},
	}
}
