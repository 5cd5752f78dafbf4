package services

import (
	"context"
	"io"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
)

// LedgerSvcFacade is the ledger resource service.
type LedgerSvcFacade interface {
	ListLedgers(ctx context.Context, opts dto.LedgerListOptions) ([]domain.Ledger, rest.Meta, error)
	GetLedger(ctx context.Context, id uint) (domain.Ledger, error)
	CreateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error)
	UpdateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error)
	DeleteLedger(ctx context.Context, l domain.Ledger) error

	// LedgerSummary returns the facet counts for the filter sidebar.
	LedgerSummary(ctx context.Context, entryType string) (domain.LedgerSummary, error)

	// PnlSummary returns income/expense/profit for the current view.
	PnlSummary(ctx context.Context, entryType, search string) (domain.PnL, error)
}

type ContactSvcFacade interface {
	ListContacts(ctx context.Context, opts dto.ContactListOptions) ([]domain.Contact, rest.Meta, error)
	GetContact(ctx context.Context, id uint) (domain.Contact, error)
	CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error)
	UpdateContact(ctx context.Context, c domain.Contact) (domain.Contact, error)
	DeleteContact(ctx context.Context, c domain.Contact) error
}

type CategorySvcFacade interface {
	ListCategories(ctx context.Context, opts dto.CategoryListOptions) ([]domain.Category, rest.Meta, error)
	GetCategory(ctx context.Context, id uint) (domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, c domain.Category) error
}

type LabelSvcFacade interface {
	ListLabels(ctx context.Context) ([]domain.Label, rest.Meta, error)
	GetLabel(ctx context.Context, id uint) (domain.Label, error)
	CreateLabel(ctx context.Context, l domain.Label) (domain.Label, error)
	UpdateLabel(ctx context.Context, l domain.Label) (domain.Label, error)
	DeleteLabel(ctx context.Context, l domain.Label) error
}

// ActivitySvcFacade is the read-only activity feed.
type ActivitySvcFacade interface {
	ListActivities(ctx context.Context, opts dto.ActivityListOptions) ([]domain.Activity, rest.Meta, error)
}

type SnapClerkSvcFacade interface {
	ListSnapClerks(ctx context.Context, opts dto.SnapClerkListOptions) ([]domain.SnapClerk, rest.Meta, error)

	// Usage returns how many receipts were submitted this billing period.
	Usage(ctx context.Context) (int, error)

	// CreateByFileID turns an already-uploaded file into a receipt.
	CreateByFileID(ctx context.Context, fileID uint) (domain.SnapClerk, error)

	// Upload sends the receipt photo and its extracted hints in one call.
	Upload(ctx context.Context, r io.Reader, req dto.SnapClerkUploadRequest) (domain.SnapClerk, error)
}

type FileSvcFacade interface {
	// UploadFile streams a multipart upload; progress may be nil.
	UploadFile(ctx context.Context, r io.Reader, name string, progress func(sent int64)) (domain.File, error)
}

type BillingSvcFacade interface {
	GetBilling(ctx context.Context) (domain.Billing, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

type ReportSvcFacade interface {
	PnlCurrentYear(ctx context.Context) (domain.PnlCurrentYear, error)
	Pnl(ctx context.Context, rng dto.ReportRange, group string) ([]domain.Pnl, error)
	PnlByCategory(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error)
	PnlByLabel(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error)
	IncomeByContact(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error)
	ExpensesByContact(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error)
}
