package wire

// SnapClerk is a receipt-capture item. Amount, contact, category, and labels
// are the raw extracted strings, pre-resolution; conversion produces a
// ledger entry server-side.
type SnapClerk struct {
	ID          uint    `json:"id"`
	AccountID   uint    `json:"account_id"`
	AddedByID   uint    `json:"added_by_id"`
	Status      string  `json:"status"`
	FileID      uint    `json:"file_id"`
	File        File    `json:"file"`
	LedgerID    uint    `json:"ledger_id"`
	Amount      float64 `json:"amount"`
	Contact     string  `json:"contact"`
	Category    string  `json:"category"`
	Labels      string  `json:"labels"`
	Note        string  `json:"note"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt string  `json:"processed_at"`
}

type File struct {
	ID               uint   `json:"id"`
	AccountID        uint   `json:"account_id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Size             int64  `json:"size"`
	URL              string `json:"url"`
	Thumb600By600URL string `json:"thumb_600_by_600_url"`
}
