package wire

// Category type wire encoding. The API stores "1" for expense and "2" for
// income; the domain uses the decoded strings.
const (
	CategoryTypeExpense = "1"
	CategoryTypeIncome  = "2"
)

type Category struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"account_id"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Count     int    `json:"count"`
}

type Label struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"account_id"`
	Name      string `json:"name" validate:"required"`
	Count     int    `json:"count"`
}
