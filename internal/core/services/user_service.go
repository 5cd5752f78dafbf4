package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// UserService covers the logged-in user profile and the active account's
// membership.
type UserService struct {
	BaseService
	api      *rest.Client
	scope    ports.AccountScope
	track    *utils.Track
	validate *validator.Validate
}

func NewUserService(api *rest.Client, scope ports.AccountScope, track *utils.Track) *UserService {
	return &UserService{api: api, scope: scope, track: track, validate: newValidator()}
}

// GetMe returns the logged-in user with their accounts.
func (s *UserService) GetMe(ctx context.Context) (domain.User, error) {
	var w wire.User
	if err := s.api.Get(ctx, "/oauth/me", nil, &w); err != nil {
		return domain.User{}, err
	}

	user := mapping.ToDomainUser(w)
	s.track.Identify(user.ID, user.Email)
	return user, nil
}

func (s *UserService) UpdateMe(ctx context.Context, user domain.User) (domain.User, error) {
	body := map[string]string{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
	}

	var resp wire.User
	if err := s.api.Put(ctx, "/oauth/me", body, &resp); err != nil {
		return domain.User{}, err
	}
	return mapping.ToDomainUser(resp), nil
}

// ChangePassword updates the login password; the server verifies the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, current, password string) error {
	body := map[string]string{
		"current_password": current,
		"password":         password,
	}
	return s.api.Put(ctx, "/oauth/change-password", body, nil)
}

// ListUsers returns the active account's members.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var ws []wire.User
	path := fmt.Sprintf("/api/v3/%d/users", s.scope.ActiveAccountID())
	if err := s.api.Get(ctx, path, nil, &ws); err != nil {
		return nil, err
	}
	return mapping.ToDomainUserSlice(ws), nil
}

// InviteUser sends an account invite email.
func (s *UserService) InviteUser(ctx context.Context, req dto.InviteUserRequest) error {
	if err := checkStruct(s.validate, req); err != nil {
		return err
	}

	accountID := s.scope.ActiveAccountID()
	path := fmt.Sprintf("/api/v3/%d/users/invite", accountID)
	if err := s.api.Post(ctx, path, req, nil); err != nil {
		return err
	}
	s.track.Event(accountID, "user-invite", nil)
	return nil
}

// RemoveUser detaches a user from the active account.
func (s *UserService) RemoveUser(ctx context.Context, userID uint) error {
	path := fmt.Sprintf("/api/v3/%d/users/%d", s.scope.ActiveAccountID(), userID)
	return s.api.Delete(ctx, path)
}
