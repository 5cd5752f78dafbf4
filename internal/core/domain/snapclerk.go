package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapClerkStatus is the lifecycle state of a receipt capture.
type SnapClerkStatus string

const (
	SnapClerkPending   SnapClerkStatus = "Pending"
	SnapClerkProcessed SnapClerkStatus = "Processed"
	SnapClerkRejected  SnapClerkStatus = "Rejected"
)

// SnapClerk is a captured receipt waiting to become a ledger entry. The
// contact, category, and labels fields are raw extracted strings that the
// server resolves on conversion.
type SnapClerk struct {
	ID          uint            `json:"id"`
	AccountID   uint            `json:"accountID"`
	AddedByID   uint            `json:"addedByID"`
	Status      SnapClerkStatus `json:"status"`
	File        File            `json:"file"`
	LedgerID    uint            `json:"ledgerID"` // set once processed
	Amount      decimal.Decimal `json:"amount"`
	Contact     string          `json:"contact"`
	Category    string          `json:"category"`
	Labels      string          `json:"labels"` // comma-joined
	Note        string          `json:"note"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	CreatedAt   time.Time       `json:"createdAt"`
	ProcessedAt time.Time       `json:"processedAt"`
}

// File is an uploaded attachment.
type File struct {
	ID               uint   `json:"id"`
	AccountID        uint   `json:"accountID"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Size             int64  `json:"size"`
	URL              string `json:"url"`
	Thumb600By600URL string `json:"thumb600By600URL"`
}
