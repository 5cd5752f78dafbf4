package services

import (
	"context"
	"fmt"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// BillingService reads the subscription state and invoice history of the
// active account.
type BillingService struct {
	BaseService
	api   *rest.Client
	scope ports.AccountScope
}

func NewBillingService(api *rest.Client, scope ports.AccountScope) *BillingService {
	return &BillingService{api: api, scope: scope}
}

func (s *BillingService) GetBilling(ctx context.Context) (domain.Billing, error) {
	var w wire.Billing
	path := fmt.Sprintf("/api/v3/%d/account/billing", s.scope.ActiveAccountID())
	if err := s.api.Get(ctx, path, nil, &w); err != nil {
		return domain.Billing{}, err
	}
	return mapping.ToDomainBilling(w), nil
}

func (s *BillingService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var ws []wire.Invoice
	path := fmt.Sprintf("/api/v3/%d/account/billing/invoices", s.scope.ActiveAccountID())
	if err := s.api.Get(ctx, path, nil, &ws); err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(ws), nil
}
