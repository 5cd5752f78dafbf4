package wire

// Account is the root scoping entity. Currency and locale are newer,
// optional fields; decoding older payloads leaves them zero-valued.
type Account struct {
	ID       uint   `json:"id"`
	OwnerID  uint   `json:"owner_id"`
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

type User struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	LastActivity string    `json:"last_activity"`
	Accounts     []Account `json:"accounts"`
}

// Billing is the subscription state for an account.
type Billing struct {
	ID               uint   `json:"id"`
	PaymentProcessor string `json:"payment_processor"`
	Subscription     string `json:"subscription"`
	Status           string `json:"status"`
	TrialExpire      string `json:"trial_expire"`
}

// Invoice is one entry of the billing history.
type Invoice struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method"`
	InvoiceURL    string  `json:"invoice_url"`
}
