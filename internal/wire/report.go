package wire

// PnlCurrentYear is the body of GET /reports/pnl-current-year.
type PnlCurrentYear struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Pnl is one row of GET /reports/pnl (grouped by month or quarter).
type Pnl struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// NameAmount is one row of the by-contact / by-category / by-label reports.
type NameAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
