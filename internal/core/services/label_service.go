package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// LabelService is the label resource service. The label list is small and
// unpaginated; the API still sends the list headers.
type LabelService struct {
	BaseService
	api      *rest.Client
	scope    ports.AccountScope
	track    *utils.Track
	validate *validator.Validate
}

func NewLabelService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *LabelService {
	return &LabelService{api: api, scope: scope, track: track, validate: newValidator()}
}

func (s *LabelService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d%s", s.scope.ActiveAccountID(), suffix)
}

func (s *LabelService) ListLabels(ctx context.Context) ([]domain.Label, rest.Meta, error) {
	var ws []wire.Label
	meta, err := s.api.GetList(ctx, s.path("/labels"), nil, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainLabelSlice(ws), meta, nil
}

func (s *LabelService) GetLabel(ctx context.Context, id uint) (domain.Label, error) {
	var w wire.Label
	if err := s.api.Get(ctx, s.path(fmt.Sprintf("/labels/%d", id)), nil, &w); err != nil {
		return domain.Label{}, err
	}
	return mapping.ToDomainLabel(w), nil
}

func (s *LabelService) CreateLabel(ctx context.Context, l domain.Label) (domain.Label, error) {
	w := mapping.ToWireLabel(l)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Label{}, err
	}

	var resp wire.Label
	if err := s.api.Post(ctx, s.path("/labels"), w, &resp); err != nil {
		return domain.Label{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "label-create", nil)
	return mapping.ToDomainLabel(resp), nil
}

func (s *LabelService) UpdateLabel(ctx context.Context, l domain.Label) (domain.Label, error) {
	w := mapping.ToWireLabel(l)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Label{}, err
	}

	var resp wire.Label
	if err := s.api.Put(ctx, s.path(fmt.Sprintf("/labels/%d", l.ID)), w, &resp); err != nil {
		return domain.Label{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "label-update", nil)
	return mapping.ToDomainLabel(resp), nil
}

func (s *LabelService) DeleteLabel(ctx context.Context, l domain.Label) error {
	if err := s.api.Delete(ctx, s.path(fmt.Sprintf("/labels/%d", l.ID))); err != nil {
		return err
	}
	s.track.Event(s.scope.ActiveAccountID(), "label-delete", nil)
	return nil
}
