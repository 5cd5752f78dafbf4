package services

import (
	"context"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/dto"
)

// AuthSvcFacade handles the unscoped auth flows.
type AuthSvcFacade interface {
	// Login exchanges credentials for an access token (password grant) and
	// persists the token and user id.
	Login(ctx context.Context, email, password string) (dto.LoginResult, error)

	// Logout drops the persisted token and user state.
	Logout(ctx context.Context) error

	// TokenValid reports whether a token is present and unexpired. A false
	// result should force a logout.
	TokenValid() bool

	Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, password, hash string) error
}

// UserSvcFacade covers the logged-in user and account membership.
type UserSvcFacade interface {
	// GetMe returns the logged-in user with their accounts.
	GetMe(ctx context.Context) (domain.User, error)

	UpdateMe(ctx context.Context, user domain.User) (domain.User, error)
	ChangePassword(ctx context.Context, current, password string) error

	// ListUsers returns the active account's members.
	ListUsers(ctx context.Context) ([]domain.User, error)

	InviteUser(ctx context.Context, req dto.InviteUserRequest) error
	RemoveUser(ctx context.Context, userID uint) error
}
