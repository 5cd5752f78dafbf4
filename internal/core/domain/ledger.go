package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is a signed financial transaction record. A positive amount is
// income, a negative amount is an expense.
type Ledger struct {
	ID        uint            `json:"id"`
	AccountID uint            `json:"accountID"`
	AddedByID uint            `json:"addedByID"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Contact   Contact         `json:"contact"`
	Category  Category        `json:"category"`
	Labels    []Label         `json:"labels"`
	Files     []File          `json:"files"`
}

// EntryType classifies the entry by the sign of its amount.
func (l Ledger) EntryType() CategoryType {
	if l.Amount.Sign() < 0 {
		return CategoryExpense
	}
	return CategoryIncome
}

// LedgerSummary holds the server-computed facet counts used to render
// filter sidebars.
type LedgerSummary struct {
	Years      []YearCount  `json:"years"`
	Labels     []FacetCount `json:"labels"`
	Categories []FacetCount `json:"categories"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type FacetCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PnL is the income/expense/profit rollup for the current ledger view.
type PnL struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}
