package controllers

import (
	"context"
	"errors"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
)

// LedgerForm is the add/edit screen for a ledger entry. The form holds the
// amount as the magnitude the user typed; the income/expense toggle decides
// the sign only on the submitted copy, so a failed submit never flips what
// the user sees, no matter how many times they retry.
type LedgerForm struct {
	svc ports.LedgerSvcFacade

	entry       domain.Ledger
	entryType   domain.CategoryType
	fieldErrors map[string]string
}

func NewLedgerForm(svc ports.LedgerSvcFacade) *LedgerForm {
	return &LedgerForm{svc: svc, entryType: domain.CategoryIncome}
}

// SetEntry loads an existing entry into the form. The stored sign becomes
// the type toggle; the form keeps the magnitude.
func (f *LedgerForm) SetEntry(l domain.Ledger) {
	f.entryType = l.EntryType()
	l.Amount = l.Amount.Abs()
	f.entry = l
}

func (f *LedgerForm) Entry() domain.Ledger {
	return f.entry
}

func (f *LedgerForm) EntryType() domain.CategoryType {
	return f.entryType
}

// SetEntryType flips the income/expense toggle. The displayed amount does
// not change; the sign is applied at submit time.
func (f *LedgerForm) SetEntryType(t domain.CategoryType) {
	f.entryType = t
}

func (f *LedgerForm) FieldErrors() map[string]string {
	return f.fieldErrors
}

// Submit creates or updates the entry. The submitted copy carries a
// negative amount for expenses and a positive one for income.
func (f *LedgerForm) Submit(ctx context.Context) (domain.Ledger, error) {
	submit := f.entry
	submit.Amount = submit.Amount.Abs()
	if f.entryType == domain.CategoryExpense {
		submit.Amount = submit.Amount.Neg()
	}

	var saved domain.Ledger
	var err error
	if submit.ID == 0 {
		saved, err = f.svc.CreateLedger(ctx, submit)
	} else {
		saved, err = f.svc.UpdateLedger(ctx, submit)
	}
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			f.fieldErrors = verr.Fields
		}
		return domain.Ledger{}, err
	}

	f.fieldErrors = nil
	f.SetEntry(saved)
	return saved, nil
}
