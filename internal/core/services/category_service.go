package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// CategoryService is the category resource service. Categories go over the
// wire with the encoded type ("1" expense, "2" income); the mapping layer
// hides that from callers.
type CategoryService struct {
	BaseService
	api      *rest.Client
	scope    ports.AccountScope
	track    *utils.Track
	validate *validator.Validate
}

func NewCategoryService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *CategoryService {
	return &CategoryService{api: api, scope: scope, track: track, validate: newValidator()}
}

func (s *CategoryService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d%s", s.scope.ActiveAccountID(), suffix)
}

func (s *CategoryService) ListCategories(ctx context.Context, opts dto.CategoryListOptions) ([]domain.Category, rest.Meta, error) {
	q := url.Values{}
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}

	var ws []wire.Category
	meta, err := s.api.GetList(ctx, s.path("/categories"), q, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainCategorySlice(ws), meta, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (domain.Category, error) {
	var w wire.Category
	if err := s.api.Get(ctx, s.path(fmt.Sprintf("/categories/%d", id)), nil, &w); err != nil {
		return domain.Category{}, err
	}
	return mapping.ToDomainCategory(w), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	w := mapping.ToWireCategory(c)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Category{}, err
	}

	var resp wire.Category
	if err := s.api.Post(ctx, s.path("/categories"), w, &resp); err != nil {
		return domain.Category{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "category-create", nil)
	return mapping.ToDomainCategory(resp), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	w := mapping.ToWireCategory(c)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Category{}, err
	}

	var resp wire.Category
	if err := s.api.Put(ctx, s.path(fmt.Sprintf("/categories/%d", c.ID)), w, &resp); err != nil {
		return domain.Category{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "category-update", nil)
	return mapping.ToDomainCategory(resp), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, c domain.Category) error {
	if err := s.api.Delete(ctx, s.path(fmt.Sprintf("/categories/%d", c.ID))); err != nil {
		return err
	}
	s.track.Event(s.scope.ActiveAccountID(), "category-delete", nil)
	return nil
}
