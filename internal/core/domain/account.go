package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the top-level tenant entity; all business data belongs to
// exactly one account.
type Account struct {
	ID       uint   `json:"id"`
	OwnerID  uint   `json:"ownerID"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// User is a person with access to one or more accounts.
type User struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	LastActivity time.Time `json:"lastActivity"`
	Accounts     []Account `json:"accounts"`
}

// Billing subscription states.
const (
	BillingStatusActive     = "Active"
	BillingStatusTrial      = "Trial"
	BillingStatusExpired    = "Expired"
	BillingStatusDelinquent = "Delinquent"
)

// Billing is the subscription state of an account.
type Billing struct {
	ID               uint      `json:"id"`
	PaymentProcessor string    `json:"paymentProcessor"`
	Subscription     string    `json:"subscription"` // Monthly or Yearly
	Status           string    `json:"status"`
	TrialExpire      time.Time `json:"trialExpire"`
}

// TrialDaysLeft returns whole days until trial expiry, never negative.
func (b Billing) TrialDaysLeft(now time.Time) int {
	if !now.Before(b.TrialExpire) {
		return 0
	}
	return int(b.TrialExpire.Sub(now).Hours() / 24)
}

// Invoice is one row of the billing history.
type Invoice struct {
	ID            uint            `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionID"`
	PaymentMethod string          `json:"paymentMethod"`
	InvoiceURL    string          `json:"invoiceURL"`
}
