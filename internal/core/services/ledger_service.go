package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// LedgerService is the ledger resource service.
type LedgerService struct {
	BaseService
	api      *rest.Client
	scope    ports.AccountScope
	track    *utils.Track
	validate *validator.Validate
}

func NewLedgerService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *LedgerService {
	return &LedgerService{api: api, scope: scope, track: track, validate: newValidator()}
}

func (s *LedgerService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d%s", s.scope.ActiveAccountID(), suffix)
}

// ListLedgers returns one page of entries plus the pagination headers.
func (s *LedgerService) ListLedgers(ctx context.Context, opts dto.LedgerListOptions) ([]domain.Ledger, rest.Meta, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.CategoryID > 0 {
		q.Set("category_id", strconv.FormatUint(uint64(opts.CategoryID), 10))
	}
	if len(opts.LabelIDs) > 0 {
		ids := make([]string, len(opts.LabelIDs))
		for i, id := range opts.LabelIDs {
			ids[i] = strconv.FormatUint(uint64(id), 10)
		}
		q.Set("label_ids", strings.Join(ids, ","))
	}
	if opts.Year > 0 {
		q.Set("year", strconv.Itoa(opts.Year))
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}

	var ws []wire.Ledger
	meta, err := s.api.GetList(ctx, s.path("/ledger"), q, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainLedgerSlice(ws), meta, nil
}

func (s *LedgerService) GetLedger(ctx context.Context, id uint) (domain.Ledger, error) {
	var w wire.Ledger
	if err := s.api.Get(ctx, s.path(fmt.Sprintf("/ledger/%d", id)), nil, &w); err != nil {
		return domain.Ledger{}, err
	}
	return mapping.ToDomainLedger(w), nil
}

func (s *LedgerService) CreateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error) {
	w := mapping.ToWireLedger(l)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Ledger{}, err
	}

	var resp wire.Ledger
	if err := s.api.Post(ctx, s.path("/ledger"), w, &resp); err != nil {
		return domain.Ledger{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "ledger-create", nil)
	return mapping.ToDomainLedger(resp), nil
}

func (s *LedgerService) UpdateLedger(ctx context.Context, l domain.Ledger) (domain.Ledger, error) {
	w := mapping.ToWireLedger(l)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Ledger{}, err
	}

	var resp wire.Ledger
	if err := s.api.Put(ctx, s.path(fmt.Sprintf("/ledger/%d", l.ID)), w, &resp); err != nil {
		return domain.Ledger{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "ledger-update", nil)
	return mapping.ToDomainLedger(resp), nil
}

func (s *LedgerService) DeleteLedger(ctx context.Context, l domain.Ledger) error {
	if err := s.api.Delete(ctx, s.path(fmt.Sprintf("/ledger/%d", l.ID))); err != nil {
		return err
	}
	s.track.Event(s.scope.ActiveAccountID(), "ledger-delete", nil)
	return nil
}

// LedgerSummary returns the year/label/category facet counts for the
// filter sidebar. entryType may be "income", "expense", or "".
func (s *LedgerService) LedgerSummary(ctx context.Context, entryType string) (domain.LedgerSummary, error) {
	q := url.Values{}
	if entryType != "" {
		q.Set("type", entryType)
	}

	var w wire.LedgerSummary
	if err := s.api.Get(ctx, s.path("/ledger-summary"), q, &w); err != nil {
		return domain.LedgerSummary{}, err
	}
	return mapping.ToDomainLedgerSummary(w), nil
}

// PnlSummary returns income/expense/profit for the filtered view.
func (s *LedgerService) PnlSummary(ctx context.Context, entryType, search string) (domain.PnL, error) {
	q := url.Values{}
	if entryType != "" {
		q.Set("type", entryType)
	}
	if search != "" {
		q.Set("search", search)
	}

	var w wire.PnlSummary
	if err := s.api.Get(ctx, s.path("/ledger-pl-summary"), q, &w); err != nil {
		return domain.PnL{}, err
	}
	return mapping.ToDomainPnL(w), nil
}
