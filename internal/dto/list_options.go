// Package dto holds the request option structs passed into the resource
// services. These are client-side shapes; the wire package owns what goes
// over HTTP.
package dto

// LedgerListOptions are the filter dimensions of the ledger list endpoint.
// Zero values mean "not filtered".
type LedgerListOptions struct {
	Page       int
	Type       string // "income", "expense", or "" for both
	Search     string
	CategoryID uint
	LabelIDs   []uint // sent comma-joined
	Year       int
	Order      string
	Sort       string // ASC or DESC
}

type ContactListOptions struct {
	Page   int
	Limit  int
	Search string
}

type CategoryListOptions struct {
	Type string // "income", "expense", or "" for both
}

type ActivityListOptions struct {
	Page        int
	Limit       int
	GroupByDate bool
	LedgerID    uint // when set, scoped to one ledger entry's feed
}

type SnapClerkListOptions struct {
	Page  int
	Limit int
	Order string
	Sort  string
}
