package wire

// Activity is a read-only audit record. The client never posts these back.
type Activity struct {
	ID          uint    `json:"id"`
	AccountID   uint    `json:"account_id"`
	UserID      uint    `json:"user_id"`
	User        User    `json:"user"`
	Action      string  `json:"action"`
	SubAction   string  `json:"sub_action"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	LedgerID    uint    `json:"ledger_id"`
	ContactID   uint    `json:"contact_id"`
	LabelID     uint    `json:"label_id"`
	CategoryID  uint    `json:"category_id"`
	SnapClerkID uint    `json:"snapclerk_id"`
	Message     string  `json:"message"`
	CreatedAt   string  `json:"created_at"`
}
