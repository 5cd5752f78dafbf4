package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// reportDateFormat is how report endpoints take their date bounds.
const reportDateFormat = "2006-01-02"

// ReportService reads the profit-and-loss report endpoints.
type ReportService struct {
	BaseService
	api   *rest.Client
	scope ports.AccountScope
}

func NewReportService(api *rest.Client, scope ports.AccountScope) *ReportService {
	return &ReportService{api: api, scope: scope}
}

func (s *ReportService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d/reports%s", s.scope.ActiveAccountID(), suffix)
}

func rangeQuery(rng dto.ReportRange) url.Values {
	q := url.Values{}
	q.Set("start", rng.Start.Format(reportDateFormat))
	q.Set("end", rng.End.Format(reportDateFormat))
	if rng.Sort != "" {
		q.Set("sort", rng.Sort)
	}
	return q
}

// PnlCurrentYear returns the running profit/loss figure for this year.
func (s *ReportService) PnlCurrentYear(ctx context.Context) (domain.PnlCurrentYear, error) {
	var w wire.PnlCurrentYear
	if err := s.api.Get(ctx, s.path("/pnl-current-year"), nil, &w); err != nil {
		return domain.PnlCurrentYear{}, err
	}
	return mapping.ToDomainPnlCurrentYear(w), nil
}

// Pnl returns grouped profit-and-loss rows; group is "month", "quarter",
// or "year".
func (s *ReportService) Pnl(ctx context.Context, rng dto.ReportRange, group string) ([]domain.Pnl, error) {
	q := rangeQuery(rng)
	if group != "" {
		q.Set("group", group)
	}

	var ws []wire.Pnl
	if err := s.api.Get(ctx, s.path("/pnl"), q, &ws); err != nil {
		return nil, err
	}
	return mapping.ToDomainPnlSlice(ws), nil
}

func (s *ReportService) PnlByCategory(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error) {
	return s.nameAmounts(ctx, "/pnl-category", rng)
}

func (s *ReportService) PnlByLabel(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error) {
	return s.nameAmounts(ctx, "/pnl-label", rng)
}

func (s *ReportService) IncomeByContact(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error) {
	return s.nameAmounts(ctx, "/income-by-contact", rng)
}

func (s *ReportService) ExpensesByContact(ctx context.Context, rng dto.ReportRange) ([]domain.NameAmount, error) {
	return s.nameAmounts(ctx, "/expenses-by-contact", rng)
}

func (s *ReportService) nameAmounts(ctx context.Context, suffix string, rng dto.ReportRange) ([]domain.NameAmount, error) {
	var ws []wire.NameAmount
	if err := s.api.Get(ctx, s.path(suffix), rangeQuery(rng), &ws); err != nil {
		return nil, err
	}
	return mapping.ToDomainNameAmountSlice(ws), nil
}
