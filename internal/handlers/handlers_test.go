package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfolio_tracker/internal/core/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/handlers"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/platform/config"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// failingBalances makes every balance increment fail so the ledger-only path can be observed.
type failingBalances struct {
	*memory.Store
}

func (failingBalances) IncrementCashBalance(context.Context, string, string, domain.Currency, decimal.Decimal) error {
	return errors.New("connection reset")
}

type APITestSuite struct {
	suite.Suite
	cfg    *config.Config
	store  *memory.Store
	router *gin.Engine
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = &config.Config{
		JWTSecret:                  testJWTSecret,
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "portfolio-tracker-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		RefreshTokenCookieName:     "rtid",
		RefreshTokenCookiePath:     "/api/v1/auth",
		AuthRateLimit:              "1000-M",
		DefaultLocale:              "en",
		LedgerPageSize:             10,
	}
	s.store = memory.NewStore()
	s.router = s.buildRouter(memory.NewRepositoryProvider(s.store))
}

func (s *APITestSuite) buildRouter(repos portsrepo.RepositoryProvider) *gin.Engine {
	catalog, err := i18n.NewCatalog(s.cfg.DefaultLocale)
	s.Require().NoError(err)

	r := gin.New()
	container := services.NewServiceContainer(s.cfg, repos, nil)
	handlers.RegisterRoutes(r, s.cfg, container, catalog, nil)
	return r
}

func (s *APITestSuite) seedUser(userID string) string {
	s.Require().NoError(s.store.SaveUser(context.Background(), domain.User{
		UserID:       userID,
		Email:        userID + "@example.com",
		Name:         userID,
		AuthProvider: domain.ProviderLocal,
	}))
	token, _, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}

func (s *APITestSuite) do(router *gin.Engine, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) createPortfolio(router *gin.Engine, token, name string) string {
	w := s.do(router, http.MethodPost, "/api/v1/portfolios", token, map[string]any{"name": name})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PortfolioMutationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Portfolio)
	return resp.Portfolio.PortfolioID
}

func decode[T any](s *APITestSuite, w *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *APITestSuite) TestHealth() {
	w := s.do(s.router, http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *APITestSuite) TestAnonymousReadsAreEmpty() {
	w := s.do(s.router, http.MethodGet, "/api/v1/portfolios", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(decode[dto.ListPortfoliosResponse](s, w).Portfolios)

	w = s.do(s.router, http.MethodGet, "/api/v1/transactions", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(decode[dto.ListTransactionsResponse](s, w).Transactions)

	w = s.do(s.router, http.MethodGet, "/api/v1/balances", "", nil)
	s.Equal(http.StatusOK, w.Code)
	summary := decode[dto.BalanceSummaryResponse](s, w)
	s.Equal(domain.ILS, summary.DisplayCurrency)
	s.True(summary.TotalValue.IsZero())
}

func (s *APITestSuite) TestAnonymousWritesMustSignIn() {
	w := s.do(s.router, http.MethodPost, "/api/v1/portfolios", "", map[string]any{"name": "Main"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("You must sign in to do that", decode[handlers.ErrorResponse](s, w).Error)

	w = s.do(s.router, http.MethodPost, "/api/v1/deposits", "", map[string]any{"portfolioID": "p1", "amount": "10"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(s.router, http.MethodGet, "/api/v1/me", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestInvalidTokenRejected() {
	w := s.do(s.router, http.MethodGet, "/api/v1/portfolios", "not-a-jwt", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestPortfolioLifecycle() {
	token := s.seedUser("u1")

	w := s.do(s.router, http.MethodPost, "/api/v1/portfolios", token, map[string]any{"name": "   "})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Enter a portfolio name", decode[handlers.ErrorResponse](s, w).Error)

	first := s.createPortfolio(s.router, token, "Leumi")
	second := s.createPortfolio(s.router, token, "IBKR")

	w = s.do(s.router, http.MethodGet, "/api/v1/portfolios", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	list := decode[dto.ListPortfoliosResponse](s, w).Portfolios
	s.Require().Len(list, 2)
	s.Equal(first, list[0].PortfolioID)
	s.Equal(second, list[1].PortfolioID)
	s.True(list[0].BuyFee.Equal(decimal.RequireFromString("2.5")))

	w = s.do(s.router, http.MethodPut, "/api/v1/portfolios/"+first, token, map[string]any{"name": "Leumi Trade", "buyFee": "1", "sellFee": "1.5"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.PortfolioMutationResponse](s, w)
	s.Equal("Leumi Trade", updated.Portfolio.Name)

	w = s.do(s.router, http.MethodPut, "/api/v1/portfolios/"+first, token, map[string]any{"name": "x", "buyFee": "-1"})
	s.Equal(http.StatusBadRequest, w.Code)

	other := s.seedUser("u2")
	w = s.do(s.router, http.MethodDelete, "/api/v1/portfolios/"+first, other, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(s.router, http.MethodDelete, "/api/v1/portfolios/"+first, token, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(s.router, http.MethodPost, "/api/v1/portfolios/refresh", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(decode[dto.ListPortfoliosResponse](s, w).Portfolios, 1)
}

func (s *APITestSuite) TestDepositFullSuccess() {
	token := s.seedUser("u1")
	portfolioID := s.createPortfolio(s.router, token, "Main")

	w := s.do(s.router, http.MethodPost, "/api/v1/deposits", token, map[string]any{
		"portfolioID": portfolioID, "currency": "USD", "amount": "100.50", "date": "2025-03-01",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decode[dto.DepositResponse](s, w)
	s.True(resp.Success)
	s.True(resp.BalanceUpdated)
	s.Equal("Main", resp.Transaction.PortfolioName)
	s.Equal("2025-03-01", resp.Transaction.Date)

	w = s.do(s.router, http.MethodGet, "/api/v1/balances?currency=USD", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	summary := decode[dto.BalanceSummaryResponse](s, w)
	s.Equal(domain.USD, summary.DisplayCurrency)
	s.True(summary.TotalValue.Equal(decimal.RequireFromString("100.50")))
	s.True(summary.Totals[domain.ILS].IsZero())

	w = s.do(s.router, http.MethodGet, "/api/v1/transactions", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	ledger := decode[dto.ListTransactionsResponse](s, w)
	s.Require().Len(ledger.Transactions, 1)
	s.Equal(domain.Deposit, ledger.Transactions[0].Type)
	s.Contains(ledger.Transactions[0].FormattedAmount, "100.50")
}

func (s *APITestSuite) TestDepositLedgerOnly() {
	repos := memory.NewRepositoryProvider(s.store)
	repos.CashBalanceRepo = failingBalances{s.store}
	router := s.buildRouter(repos)

	token := s.seedUser("u1")
	portfolioID := s.createPortfolio(router, token, "Main")

	w := s.do(router, http.MethodPost, "/api/v1/deposits", token, map[string]any{"portfolioID": portfolioID, "amount": "10"})
	s.Require().Equal(http.StatusMultiStatus, w.Code, w.Body.String())
	resp := decode[dto.DepositResponse](s, w)
	s.True(resp.Success)
	s.False(resp.BalanceUpdated)
	s.Equal("Deposit saved, but balance was not updated", resp.Message)

	w = s.do(router, http.MethodGet, "/api/v1/transactions", token, nil)
	s.Len(decode[dto.ListTransactionsResponse](s, w).Transactions, 1)
}

func (s *APITestSuite) TestDepositValidation() {
	token := s.seedUser("u1")
	portfolioID := s.createPortfolio(s.router, token, "Main")

	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing portfolio", map[string]any{"amount": "10"}, "Select a portfolio"},
		{"zero amount", map[string]any{"portfolioID": portfolioID, "amount": "0"}, "Enter a positive amount"},
		{"unsupported currency", map[string]any{"portfolioID": portfolioID, "amount": "10", "currency": "EUR"}, "Unsupported currency"},
		{"too many decimals", map[string]any{"portfolioID": portfolioID, "amount": "0.00001", "currency": "USD"}, "Too many decimal places for this currency"},
		{"above limit", map[string]any{"portfolioID": portfolioID, "amount": "100000000000000000"}, "Amount exceeds the deposit limit"},
		{"bad date", map[string]any{"portfolioID": portfolioID, "amount": "10", "date": "01/03/2025"}, "Invalid date"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(s.router, http.MethodPost, "/api/v1/deposits", token, tc.body)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal(tc.want, decode[handlers.ErrorResponse](s, w).Error)
		})
	}

	other := s.seedUser("u2")
	w := s.do(s.router, http.MethodPost, "/api/v1/deposits", other, map[string]any{"portfolioID": portfolioID, "amount": "10"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestLedgerInvalidPageToken() {
	token := s.seedUser("u1")
	w := s.do(s.router, http.MethodGet, "/api/v1/transactions?nextToken=%25%25", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid page token", decode[handlers.ErrorResponse](s, w).Error)
}

func (s *APITestSuite) TestLocalizedMessages() {
	w := s.do(s.router, http.MethodPost, "/api/v1/portfolios", "", map[string]any{"name": "Main"}, "Accept-Language", "he-IL,he;q=0.9")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("he", w.Header().Get("Content-Language"))
	s.Equal("יש להתחבר כדי לבצע פעולה זו", decode[handlers.ErrorResponse](s, w).Error)
}

func (s *APITestSuite) TestActions() {
	w := s.do(s.router, http.MethodGet, "/api/v1/actions", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	actions := decode[[]dto.ActionResponse](s, w)
	s.Require().Len(actions, 5)
	for _, a := range actions {
		s.Equal(a.Type == domain.Deposit, a.Implemented)
	}
}

func (s *APITestSuite) TestRegisterLoginRefreshLogout() {
	w := s.do(s.router, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": "dana@example.com", "password": "secret1", "confirmPassword": "other1",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Passwords do not match", decode[handlers.ErrorResponse](s, w).Error)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": "Dana@Example.com", "password": "secret1", "confirmPassword": "secret1", "name": "Dana",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	registered := decode[dto.AuthResponse](s, w)
	s.NotEmpty(registered.Token)
	s.Equal("dana@example.com", registered.User.Email)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": "dana@example.com", "password": "secret1", "confirmPassword": "secret1",
	})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "dana@example.com", "password": "wrong-pass"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "dana@example.com", "password": "secret1"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	login := decode[dto.AuthResponse](s, w)
	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)
	refreshCookie := cookies[0]
	s.Equal("rtid", refreshCookie.Name)
	s.True(refreshCookie.HttpOnly)

	w = s.do(s.router, http.MethodGet, "/api/v1/me", login.Token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("dana@example.com", decode[dto.UserResponse](s, w).Email)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(refreshCookie)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	// The presented token was rotated away.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(refreshCookie)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/logout", login.Token, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(s.router, http.MethodPost, "/api/v1/auth/refresh", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
