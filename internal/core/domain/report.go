package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PnlCurrentYear is the running profit/loss for the current year.
type PnlCurrentYear struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// Pnl is one grouped row of the profit and loss report.
type Pnl struct {
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// NameAmount is one row of the by-contact, by-category, and by-label reports.
type NameAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
