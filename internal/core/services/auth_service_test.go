package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/core/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/pkg/localstore"
)

type AuthServiceTestSuite struct {
	suite.Suite
	srv     *httptest.Server
	store   *localstore.Store
	service *services.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/oauth/token", func(c *gin.Context) {
		s.Equal("password", c.PostForm("grant_type"))
		s.Equal("books-cli", c.PostForm("client_id"))

		if c.PostForm("password") != "correct horse" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_grant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": "tok-abc123",
			"token_type":   "bearer",
			"user_id":      42,
		})
	})
	r.POST("/forgot-password", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	s.srv = httptest.NewServer(r)

	store, err := localstore.Open(filepath.Join(s.T().TempDir(), "state.json"))
	s.Require().NoError(err)
	s.store = store

	api := rest.New(rest.Options{
		BaseURL: s.srv.URL,
		Token:   func() string { return store.Get(localstore.KeyAccessToken) },
	})
	s.service = services.NewAuthService(api, store, s.srv.URL, "books-cli")
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *AuthServiceTestSuite) TestLoginPersistsState() {
	result, err := s.service.Login(context.Background(), "amy@example.com", "correct horse")

	s.Require().NoError(err)
	s.Equal(uint(42), result.UserID)
	s.Equal("tok-abc123", result.AccessToken)

	s.Equal("tok-abc123", s.store.Get(localstore.KeyAccessToken))
	s.Equal("42", s.store.Get(localstore.KeyUserID))
	s.Equal("amy@example.com", s.store.Get(localstore.KeyUserEmail))
}

func (s *AuthServiceTestSuite) TestLoginBadCredentials() {
	_, err := s.service.Login(context.Background(), "amy@example.com", "wrong")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Empty(s.store.Get(localstore.KeyAccessToken))
}

func (s *AuthServiceTestSuite) TestLogoutClearsState() {
	s.Require().NoError(s.store.Set(localstore.KeyAccessToken, "tok"))
	s.Require().NoError(s.store.Set(localstore.KeyAccountID, "5"))

	s.Require().NoError(s.service.Logout(context.Background()))

	s.Empty(s.store.Get(localstore.KeyAccessToken))
	s.Empty(s.store.Get(localstore.KeyAccountID))
}

func (s *AuthServiceTestSuite) TestTokenValid() {
	s.False(s.service.TokenValid(), "no token means not valid")

	s.Require().NoError(s.store.Set(localstore.KeyAccessToken, signedToken(s.T(), time.Now().Add(time.Hour))))
	s.True(s.service.TokenValid())

	s.Require().NoError(s.store.Set(localstore.KeyAccessToken, signedToken(s.T(), time.Now().Add(-time.Hour))))
	s.False(s.service.TokenValid())

	// opaque tokens can't be inspected locally; the server decides
	s.Require().NoError(s.store.Set(localstore.KeyAccessToken, "opaque-token"))
	s.True(s.service.TokenValid())
}

func (s *AuthServiceTestSuite) TestForgotPassword() {
	s.NoError(s.service.ForgotPassword(context.Background(), "amy@example.com"))
}

func signedToken(t *testing.T, exp time.Time) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
