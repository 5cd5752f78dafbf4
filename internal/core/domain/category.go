package domain

// CategoryType is the decoded category type. The wire format encodes these
// as "1" (expense) and "2" (income).
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category classifies ledger entries within one account.
type Category struct {
	ID        uint         `json:"id"`
	AccountID uint         `json:"accountID"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Count     int          `json:"count"` // server-computed usage count, read-only
}

// Label is a free-form tag on ledger entries.
type Label struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"accountID"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}
