package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// ContactService is the contact resource service.
type ContactService struct {
	BaseService
	api      *rest.Client
	scope    ports.AccountScope
	track    *utils.Track
	validate *validator.Validate
}

func NewContactService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *ContactService {
	return &ContactService{api: api, scope: scope, track: track, validate: newValidator()}
}

func (s *ContactService) path(suffix string) string {
	return fmt.Sprintf("/api/v3/%d%s", s.scope.ActiveAccountID(), suffix)
}

func (s *ContactService) ListContacts(ctx context.Context, opts dto.ContactListOptions) ([]domain.Contact, rest.Meta, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}

	var ws []wire.Contact
	meta, err := s.api.GetList(ctx, s.path("/contacts"), q, &ws)
	if err != nil {
		return nil, rest.Meta{}, err
	}
	return mapping.ToDomainContactSlice(ws), meta, nil
}

func (s *ContactService) GetContact(ctx context.Context, id uint) (domain.Contact, error) {
	var w wire.Contact
	if err := s.api.Get(ctx, s.path(fmt.Sprintf("/contacts/%d", id)), nil, &w); err != nil {
		return domain.Contact{}, err
	}
	return mapping.ToDomainContact(w), nil
}

func (s *ContactService) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	w := mapping.ToWireContact(c)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Contact{}, err
	}

	var resp wire.Contact
	if err := s.api.Post(ctx, s.path("/contacts"), w, &resp); err != nil {
		return domain.Contact{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "contact-create", nil)
	return mapping.ToDomainContact(resp), nil
}

func (s *ContactService) UpdateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	w := mapping.ToWireContact(c)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Contact{}, err
	}

	var resp wire.Contact
	if err := s.api.Put(ctx, s.path(fmt.Sprintf("/contacts/%d", c.ID)), w, &resp); err != nil {
		return domain.Contact{}, err
	}
	s.track.Event(s.scope.ActiveAccountID(), "contact-update", nil)
	return mapping.ToDomainContact(resp), nil
}

func (s *ContactService) DeleteContact(ctx context.Context, c domain.Contact) error {
	if err := s.api.Delete(ctx, s.path(fmt.Sprintf("/contacts/%d", c.ID))); err != nil {
		return err
	}
	s.track.Event(s.scope.ActiveAccountID(), "contact-delete", nil)
	return nil
}
