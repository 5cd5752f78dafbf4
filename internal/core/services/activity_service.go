package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// ActivityService is the read-only activity feed.
type ActivityService struct {
	BaseService
	api   *rest.Client
	scope ports.AccountScope
}

func NewActivityService(api *rest.Client, scope ports.AccountScope) *ActivityService {
	return &ActivityService{api: api, scope: scope}
}

// ListActivities returns one page of the account feed, or of a single
// ledger entry's feed when opts.LedgerID is set.
func (s *ActivityService) ListActivities(ctx context.Context, opts dto.ActivityListOptions) ([]domain.Activity, rest.Meta, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.GroupByDate {
		q.Set("group", "date")
	}
	if opts.LedgerID > 0 {
		q.Set("ledger_id", strconv.FormatUint(uint64(opts.LedgerID), 10))
	}

	path := fmt.Sprintf("/api/v3/%d/activities", s.scope.ActiveAccountID())
	var ws []wire.Activity
	meta, err := s.api.GetList(ctx, path, q, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainActivitySlice(ws), meta, nil
}
