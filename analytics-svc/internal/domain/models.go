package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

type DailySummary struct {
	Date    string          `json:"date"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Source  string          `json:"source"`
}

type FoodRank struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
