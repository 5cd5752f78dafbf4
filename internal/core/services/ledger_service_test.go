package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/core/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
)

// staticScope pins the account id for tests that don't exercise switching.
type staticScope uint

func (s staticScope) ActiveAccountID() uint { return uint(s) }

type LedgerServiceTestSuite struct {
	suite.Suite
	srv      *httptest.Server
	router   *gin.Engine
	service  *services.LedgerService
	lastList url.Values
}

func (s *LedgerServiceTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.router = gin.New()
	s.router.GET("/api/v3/7/ledger", func(c *gin.Context) {
		s.lastList = c.Request.URL.Query()
		c.Header(rest.HeaderLastPage, "true")
		c.Header(rest.HeaderLimit, "25")
		c.Header(rest.HeaderNoLimitCount, "2")
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "amount": 55.25, "date": "2025-01-10"},
			{"id": 2, "amount": -12.00, "date": "2025-01-11"},
		})
	})
	s.srv = httptest.NewServer(s.router)

	api := rest.New(rest.Options{BaseURL: s.srv.URL})
	s.service = services.NewLedgerService(api, staticScope(7), utils.NewTrack("", nil))
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *LedgerServiceTestSuite) TestListBuildsFilterQuery() {
	opts := dto.LedgerListOptions{
		Page:       3,
		Type:       "expense",
		Search:     "coffee",
		CategoryID: 4,
		LabelIDs:   []uint{1, 2, 9},
		Year:       2025,
		Sort:       "DESC",
	}

	entries, meta, err := s.service.ListLedgers(context.Background(), opts)

	s.Require().NoError(err)
	s.Len(entries, 2)
	s.True(meta.LastPage)
	s.Equal(2, meta.NoLimitCount)

	s.Equal("3", s.lastList.Get("page"))
	s.Equal("expense", s.lastList.Get("type"))
	s.Equal("coffee", s.lastList.Get("search"))
	s.Equal("4", s.lastList.Get("category_id"))
	s.Equal("1,2,9", s.lastList.Get("label_ids"))
	s.Equal("2025", s.lastList.Get("year"))
	s.Equal("DESC", s.lastList.Get("sort"))
}

func (s *LedgerServiceTestSuite) TestListOmitsZeroFilters() {
	_, _, err := s.service.ListLedgers(context.Background(), dto.LedgerListOptions{})

	s.Require().NoError(err)
	s.Empty(s.lastList.Get("page"))
	s.Empty(s.lastList.Get("type"))
	s.Empty(s.lastList.Get("label_ids"))
}

func (s *LedgerServiceTestSuite) TestListDecodesAmountSigns() {
	entries, _, err := s.service.ListLedgers(context.Background(), dto.LedgerListOptions{})

	s.Require().NoError(err)
	s.Equal(domain.CategoryIncome, entries[0].EntryType())
	s.Equal(domain.CategoryExpense, entries[1].EntryType())
	s.True(entries[1].Amount.Equal(decimal.NewFromFloat(-12.00)))
}

func (s *LedgerServiceTestSuite) TestCreateValidatesBeforeSubmit() {
	// no date and no amount: fails locally, never reaches the server
	_, err := s.service.CreateLedger(context.Background(), domain.Ledger{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)

	var verr *apperrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "date")
	s.Contains(verr.Fields, "amount")
}

func (s *LedgerServiceTestSuite) TestCreatePostsAndDecodes() {
	var gotPath string
	s.router.POST("/api/v3/7/ledger", func(c *gin.Context) {
		gotPath = c.Request.URL.Path
		var body map[string]any
		s.Require().NoError(c.BindJSON(&body))
		c.JSON(http.StatusCreated, gin.H{
			"id": 42, "amount": body["amount"], "date": body["date"],
		})
	})

	entry := domain.Ledger{
		Date:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(-80.00),
	}
	saved, err := s.service.CreateLedger(context.Background(), entry)

	s.Require().NoError(err)
	s.Equal("/api/v3/7/ledger", gotPath)
	s.Equal(uint(42), saved.ID)
	s.True(saved.Amount.Equal(decimal.NewFromFloat(-80.00)))
}

func (s *LedgerServiceTestSuite) TestDeleteNotFound() {
	s.router.DELETE("/api/v3/7/ledger/99", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})

	err := s.service.DeleteLedger(context.Background(), domain.Ledger{ID: 99})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestSummaryAndPnl() {
	s.router.GET("/api/v3/7/ledger-summary", func(c *gin.Context) {
		s.Equal("income", c.Query("type"))
		c.JSON(http.StatusOK, gin.H{
			"years":      []gin.H{{"year": 2025, "count": 10}},
			"labels":     []gin.H{},
			"categories": []gin.H{{"id": 3, "name": "Sales", "count": 10}},
		})
	})
	s.router.GET("/api/v3/7/ledger-pl-summary", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"income": 500.0, "expense": 120.0, "profit": 380.0})
	})

	summary, err := s.service.LedgerSummary(context.Background(), "income")
	s.Require().NoError(err)
	s.Require().Len(summary.Years, 1)
	s.Equal(2025, summary.Years[0].Year)

	pnl, err := s.service.PnlSummary(context.Background(), "", "")
	s.Require().NoError(err)
	s.True(pnl.Profit.Equal(decimal.NewFromFloat(380.0)))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
