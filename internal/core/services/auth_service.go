package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/pkg/localstore"
)

// AuthService handles the unscoped auth flows: password-grant login against
// /oauth/token, registration, and the password reset pair.
type AuthService struct {
	BaseService
	api      *rest.Client
	store    *localstore.Store
	baseURL  string
	clientID string
	validate *validator.Validate
}

func NewAuthService(api *rest.Client, store *localstore.Store, baseURL, clientID string) *AuthService {
	return &AuthService{
		api:      api,
		store:    store,
		baseURL:  baseURL,
		clientID: clientID,
		validate: newValidator(),
	}
}

func (s *AuthService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID: s.clientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  s.baseURL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Login exchanges credentials for an access token and persists the token,
// user id, and email.
func (s *AuthService) Login(ctx context.Context, email, password string) (dto.LoginResult, error) {
	tok, err := s.oauthConfig().PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil && rerr.Response.StatusCode < 500 {
			return dto.LoginResult{}, apperrors.ErrUnauthorized
		}
		return dto.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	result := dto.LoginResult{
		UserID:      extraUint(tok, "user_id"),
		AccessToken: tok.AccessToken,
	}

	if err := s.persistLogin(result, email); err != nil {
		return dto.LoginResult{}, err
	}
	s.LogInfo(ctx, "Logged in", "user_id", result.UserID)
	return result, nil
}

// Register creates a user plus their first account and logs them in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResult, error) {
	if err := checkStruct(s.validate, req); err != nil {
		return dto.LoginResult{}, err
	}

	var resp struct {
		UserID      uint   `json:"user_id"`
		AccountID   uint   `json:"account_id"`
		AccessToken string `json:"access_token"`
	}
	if err := s.api.Post(ctx, "/register", req, &resp); err != nil {
		return dto.LoginResult{}, err
	}

	result := dto.LoginResult{UserID: resp.UserID, AccessToken: resp.AccessToken}
	if err := s.persistLogin(result, req.Email); err != nil {
		return dto.LoginResult{}, err
	}
	if resp.AccountID != 0 {
		if err := s.store.Set(localstore.KeyAccountID, strconv.FormatUint(uint64(resp.AccountID), 10)); err != nil {
			return dto.LoginResult{}, err
		}
	}
	return result, nil
}

func (s *AuthService) persistLogin(result dto.LoginResult, email string) error {
	if err := s.store.Set(localstore.KeyAccessToken, result.AccessToken); err != nil {
		return err
	}
	if err := s.store.Set(localstore.KeyUserID, strconv.FormatUint(uint64(result.UserID), 10)); err != nil {
		return err
	}
	return s.store.Set(localstore.KeyUserEmail, email)
}

// Logout drops the persisted auth state. The server call is best-effort;
// local state is cleared regardless.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Get(ctx, "/oauth/logout", nil, nil); err != nil {
		s.LogDebug(ctx, "Server logout failed", "error", err.Error())
	}
	return s.store.Remove(
		localstore.KeyAccessToken,
		localstore.KeyUserID,
		localstore.KeyUserEmail,
		localstore.KeyAccountID,
	)
}

// TokenValid reports whether a token is present and, when it is a JWT with
// an expiry claim, unexpired. Opaque tokens count as valid; the API is the
// authority and will answer 401 if not.
func (s *AuthService) TokenValid() bool {
	raw := s.store.Get(localstore.KeyAccessToken)
	if raw == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// ForgotPassword requests a reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.Post(ctx, "/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes a reset using the emailed hash.
func (s *AuthService) ResetPassword(ctx context.Context, password, hash string) error {
	body := map[string]string{"password": password, "hash": hash}
	return s.api.Post(ctx, "/reset-password", body, nil)
}

// extraUint pulls a numeric extra field out of a token response; the token
// endpoint sends user_id alongside the standard fields.
func extraUint(tok *oauth2.Token, key string) uint {
	switch v := tok.Extra(key).(type) {
	case float64:
		return uint(v)
	case string:
		n, _ := strconv.ParseUint(v, 10, 32)
		return uint(n)
	}
	return 0
}
