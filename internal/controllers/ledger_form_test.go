package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/controllers"
	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
)

// fakeLedgerSvc records submissions and fails on demand.
type fakeLedgerSvc struct {
	failWith  error
	submitted []domain.Ledger
}

func (f *fakeLedgerSvc) ListLedgers(ctx context.Context, opts dto.LedgerListOptions) ([]domain.Ledger, rest.Meta, error) {
	return nil, rest.Meta{}, nil
}

func (f *fakeLedgerSvc) GetLedger(ctx context.Context, id uint) (domain.Ledger, error) {
	return domain.Ledger{}, apperrors.ErrNotFound
}

func (f *fakeLedgerSvc) CreateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error) {
	f.submitted = append(f.submitted, l)
	if f.failWith != nil {
		return domain.Ledger{}, f.failWith
	}
	l.ID = uint(len(f.submitted))
	return l, nil
}

func (f *fakeLedgerSvc) UpdateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error) {
	f.submitted = append(f.submitted, l)
	if f.failWith != nil {
		return domain.Ledger{}, f.failWith
	}
	return l, nil
}

func (f *fakeLedgerSvc) DeleteLedger(ctx context.Context, l domain.Ledger) error { return nil }

func (f *fakeLedgerSvc) LedgerSummary(ctx context.Context, entryType string) (domain.LedgerSummary, error) {
	return domain.LedgerSummary{}, nil
}

func (f *fakeLedgerSvc) PnlSummary(ctx context.Context, entryType, search string) (domain.PnL, error) {
	return domain.PnL{}, nil
}

func newForm(svc *fakeLedgerSvc, amount float64) *controllers.LedgerForm {
	form := controllers.NewLedgerForm(svc)
	form.SetEntry(domain.Ledger{
		Date:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(amount),
	})
	return form
}

func TestExpenseSubmitNegatesAmount(t *testing.T) {
	svc := &fakeLedgerSvc{}
	form := newForm(svc, 50)
	form.SetEntryType(domain.CategoryExpense)

	saved, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, saved.Amount.Equal(decimal.NewFromInt(-50)))
	require.Len(t, svc.submitted, 1)
	assert.True(t, svc.submitted[0].Amount.Equal(decimal.NewFromInt(-50)))
}

func TestIncomeSubmitKeepsAmountPositive(t *testing.T) {
	svc := &fakeLedgerSvc{}
	form := newForm(svc, 50)
	form.SetEntryType(domain.CategoryIncome)

	saved, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, saved.Amount.Equal(decimal.NewFromInt(50)))
}

func TestFailedSubmitPreservesEnteredMagnitude(t *testing.T) {
	svc := &fakeLedgerSvc{failWith: apperrors.NewValidationError(map[string]string{
		"date": "The date field is required.",
	})}
	form := newForm(svc, 50)
	form.SetEntryType(domain.CategoryExpense)

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	assert.True(t, form.Entry().Amount.Equal(decimal.NewFromInt(50)),
		"the form must keep the magnitude the user typed")
	assert.Equal(t, "The date field is required.", form.FieldErrors()["date"])
}

func TestRepeatedFailedSubmitsNeverDoubleFlip(t *testing.T) {
	svc := &fakeLedgerSvc{failWith: apperrors.NewValidationError(map[string]string{"note": "bad"})}
	form := newForm(svc, 50)
	form.SetEntryType(domain.CategoryExpense)

	for i := 0; i < 3; i++ {
		_, err := form.Submit(context.Background())
		require.Error(t, err)
	}

	require.Len(t, svc.submitted, 3)
	for _, l := range svc.submitted {
		assert.True(t, l.Amount.Equal(decimal.NewFromInt(-50)),
			"every retry must submit the same signed value")
	}
	assert.True(t, form.Entry().Amount.Equal(decimal.NewFromInt(50)))
}

func TestSetEntryDecodesSignIntoToggle(t *testing.T) {
	form := controllers.NewLedgerForm(&fakeLedgerSvc{})
	form.SetEntry(domain.Ledger{ID: 7, Amount: decimal.NewFromInt(-80)})

	assert.Equal(t, domain.CategoryExpense, form.EntryType())
	assert.True(t, form.Entry().Amount.Equal(decimal.NewFromInt(80)),
		"the form shows the magnitude")
}

func TestSubmitUpdatesWhenEntryHasID(t *testing.T) {
	svc := &fakeLedgerSvc{}
	form := controllers.NewLedgerForm(svc)
	form.SetEntry(domain.Ledger{
		ID:     7,
		Date:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(80),
	})

	saved, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(7), saved.ID)
}
