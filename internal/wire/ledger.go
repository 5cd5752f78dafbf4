// Package wire holds the API's JSON shapes: snake_case fields, encoded
// enums, string dates. Domain types never carry these tags; the mapping
// package converts between the two.
package wire

// Ledger is a ledger entry as the API sends and receives it.
type Ledger struct {
	ID         uint     `json:"id"`
	AccountID  uint     `json:"account_id"`
	ContactID  uint     `json:"contact_id"`
	Contact    Contact  `json:"contact"`
	Date       string   `json:"date" validate:"required"`
	AddedByID  uint     `json:"added_by_id"`
	Amount     float64  `json:"amount" validate:"required"`
	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category"`
	Note       string   `json:"note"`
	Labels     []Label  `json:"labels"`
	Files      []File   `json:"files"`
}

// LedgerSummary is the facet-count body of GET /ledger-summary.
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

// PnlSummary is the body of GET /ledger-pl-summary.
type PnlSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}
