package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// SnapClerkService handles receipt submissions: listing them, checking the
// billing-period usage, and the two creation paths (already-uploaded file,
// or a fresh multipart upload with extracted hints).
type SnapClerkService struct {
	BaseService
	api   *rest.Client
	scope ports.AccountScope
	track *utils.Track
}

func NewSnapClerkService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *SnapClerkService {
	return &SnapClerkService{api: api, scope: scope, track: track}
}

func (s *SnapClerkService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d%s", s.scope.ActiveAccountID(), suffix)
}

func (s *SnapClerkService) ListSnapClerks(ctx context.Context, opts dto.SnapClerkListOptions) ([]domain.SnapClerk, rest.Meta, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}

	var ws []wire.SnapClerk
	meta, err := s.api.GetList(ctx, s.path("/snapclerk"), q, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainSnapClerkSlice(ws), meta, nil
}

// Usage returns how many receipts were submitted this billing period.
func (s *SnapClerkService) Usage(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := s.api.Get(ctx, s.path("/snapclerk/usage"), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// CreateByFileID turns an already-uploaded file into a receipt.
func (s *SnapClerkService) CreateByFileID(ctx context.Context, fileID uint) (domain.SnapClerk, error) {
	var resp wire.SnapClerk
	body := map[string]uint{"file_id": fileID}
	if err := s.api.Post(ctx, s.path("/snapclerk/add-by-file-id"), body, &resp); err != nil {
		return domain.SnapClerk{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "snapclerk-create", nil)
	return mapping.ToDomainSnapClerk(resp), nil
}

// Upload sends the receipt photo and its extracted hints in one multipart
// request.
func (s *SnapClerkService) Upload(ctx context.Context, r io.Reader, req dto.SnapClerkUploadRequest) (domain.SnapClerk, error) {
	extra := map[string]string{
		"category": req.Category,
		"labels":   req.Labels,
		"note":     req.Note,
		"lat":      req.Lat,
		"lon":      req.Lon,
	}

	var resp wire.SnapClerk
	if err := s.api.Upload(ctx, s.path("/snapclerk"), "file", req.FileName, r, extra, nil, &resp); err != nil {
		return domain.SnapClerk{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "snapclerk-create", nil)
	return mapping.ToDomainSnapClerk(resp), nil
}
