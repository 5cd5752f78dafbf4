package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Activity is a read-only audit record from the account's activity feed.
type Activity struct {
	ID          uint            `json:"id"`
	AccountID   uint            `json:"accountID"`
	UserID      uint            `json:"userID"`
	User        User            `json:"user"`
	Action      string          `json:"action"`    // income, expense, contact, category, label, snapclerk, other
	SubAction   string          `json:"subAction"` // create, update, delete, other
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	LedgerID    uint            `json:"ledgerID"`
	ContactID   uint            `json:"contactID"`
	LabelID     uint            `json:"labelID"`
	CategoryID  uint            `json:"categoryID"`
	SnapClerkID uint            `json:"snapclerkID"`
	Message     string          `json:"message"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// FeedMessage formats the raw message template for the activity feed:
// the leading word (the actor) is bolded and the subject name becomes a
// link to the ledger entry.
func (a Activity) FeedMessage() string {
	fields := strings.Fields(a.Message)
	if len(fields) == 0 {
		return ""
	}

	first := fields[0]
	body := strings.Join(fields[1:], " ")

	// Everything after the subject name is dropped; the link replaces it.
	if a.Name != "" {
		body = strings.SplitN(body, a.Name, 2)[0]
	}
	body = body + fmt.Sprintf(`<a href="/ledger/%d">%s</a>`, a.LedgerID, a.Name)

	return fmt.Sprintf("<strong>%s</strong> %s.", first, body)
}
