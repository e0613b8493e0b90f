package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/core/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type PortfolioRegistryTestSuite struct {
	suite.Suite
	mockRepo  *MockPortfolioRepository
	registry  portssvc.PortfolioRegistry
	anonymous portssvc.PortfolioRegistry
	events    []domain.RegistryEvent
	ctx       context.Context
}

func (suite *PortfolioRegistryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockPortfolioRepository)
	suite.registry = services.NewPortfolioRegistry(suite.mockRepo, staticIdentity{userID: testUserID})
	suite.anonymous = services.NewPortfolioRegistry(suite.mockRepo, staticIdentity{})
	suite.events = nil
	suite.registry.Subscribe(func(ev domain.RegistryEvent) {
		suite.events = append(suite.events, ev)
	})
}

func (suite *PortfolioRegistryTestSuite) TestList_NoIdentityReturnsEmpty() {
	portfolios, err := suite.anonymous.List(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(portfolios)
	suite.Empty(portfolios)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPortfoliosByUser", mock.Anything, mock.Anything)
}

func (suite *PortfolioRegistryTestSuite) TestList_CachesAndOrdersByCreation() {
	older := domain.Portfolio{PortfolioID: "p1", UserID: testUserID, Name: "Old", AuditFields: domain.AuditFields{CreatedAt: time.Unix(100, 0)}}
	newer := domain.Portfolio{PortfolioID: "p2", UserID: testUserID, Name: "New", AuditFields: domain.AuditFields{CreatedAt: time.Unix(200, 0)}}
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{newer, older}, nil).Once()

	first, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)
	second, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.Require().Len(first, 2)
	suite.Equal("p1", first[0].PortfolioID)
	suite.Equal("p2", first[1].PortfolioID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestCreate_RoundTrip() {
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{}, nil).Once()
	suite.mockRepo.On("SavePortfolio", suite.ctx, mock.AnythingOfType("domain.Portfolio")).Return(nil).Once()

	_, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)

	created, err := suite.registry.Create(suite.ctx, dto.PortfolioRequest{
		Name:          "Main",
		AccountNumber: strPtr("U123"),
		BuyFee:        decPtr("1.5"),
		SellFee:       decPtr("2.0"),
	})
	suite.Require().NoError(err)
	suite.NotEmpty(created.PortfolioID)

	listed, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(created.PortfolioID, listed[0].PortfolioID)
	suite.Equal("Main", listed[0].Name)
	suite.Equal("U123", listed[0].AccountNumber)
	suite.True(decimal.RequireFromString("1.5").Equal(listed[0].BuyFee))
	suite.True(decimal.RequireFromString("2").Equal(listed[0].SellFee))
	suite.Equal(testUserID, listed[0].UserID)

	suite.Require().Len(suite.events, 1)
	suite.Equal(domain.PortfolioCreated, suite.events[0].Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestCreate_DefaultsFees() {
	suite.mockRepo.On("SavePortfolio", suite.ctx, mock.MatchedBy(func(p domain.Portfolio) bool {
		return p.BuyFee.Equal(domain.DefaultFee) && p.SellFee.Equal(domain.DefaultFee) && p.Name == "Trimmed"
	})).Return(nil).Once()

	created, err := suite.registry.Create(suite.ctx, dto.PortfolioRequest{Name: "  Trimmed  "})

	suite.Require().NoError(err)
	suite.Equal("Trimmed", created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestCreate_ValidationBeforeAnything() {
	tests := []struct {
		name     string
		registry portssvc.PortfolioRegistry
		req      dto.PortfolioRequest
		wantErr  error
	}{
		{"empty name", suite.registry, dto.PortfolioRequest{Name: ""}, domain.ErrNameRequired},
		{"whitespace name", suite.registry, dto.PortfolioRequest{Name: "   "}, domain.ErrNameRequired},
		{"whitespace name without identity", suite.anonymous, dto.PortfolioRequest{Name: " \t"}, domain.ErrNameRequired},
		{"negative buy fee", suite.registry, dto.PortfolioRequest{Name: "A", BuyFee: decPtr("-1")}, domain.ErrNegativeFee},
		{"no identity", suite.anonymous, dto.PortfolioRequest{Name: "A"}, apperrors.ErrUnauthenticated},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			created, err := tt.registry.Create(suite.ctx, tt.req)
			suite.Nil(created)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePortfolio", mock.Anything, mock.Anything)
}

func (suite *PortfolioRegistryTestSuite) TestCreate_RepositoryError() {
	suite.mockRepo.On("SavePortfolio", suite.ctx, mock.AnythingOfType("domain.Portfolio")).Return(assert.AnError).Once()

	created, err := suite.registry.Create(suite.ctx, dto.PortfolioRequest{Name: "A"})

	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.Empty(suite.events)
}

func (suite *PortfolioRegistryTestSuite) TestUpdate_OverwritesCachedEntry() {
	existing := domain.Portfolio{
		PortfolioID: "p1", UserID: testUserID, Name: "Old", AccountNumber: "X",
		BuyFee: domain.DefaultFee, SellFee: domain.DefaultFee,
		AuditFields: domain.AuditFields{CreatedAt: time.Unix(100, 0)},
	}
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{existing}, nil).Once()
	suite.mockRepo.On("UpdatePortfolio", suite.ctx, mock.MatchedBy(func(p domain.Portfolio) bool {
		return p.PortfolioID == "p1" && p.UserID == testUserID && p.Name == "New" && p.AccountNumber == ""
	})).Return(nil).Once()

	_, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)

	updated, err := suite.registry.Update(suite.ctx, "p1", dto.PortfolioRequest{Name: "New", BuyFee: decPtr("0")})
	suite.Require().NoError(err)
	suite.Equal(time.Unix(100, 0), updated.CreatedAt)
	suite.True(updated.BuyFee.IsZero())

	listed, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal("New", listed[0].Name)
	suite.Empty(listed[0].AccountNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.On("UpdatePortfolio", suite.ctx, mock.AnythingOfType("domain.Portfolio")).Return(apperrors.ErrNotFound).Once()

	updated, err := suite.registry.Update(suite.ctx, "missing", dto.PortfolioRequest{Name: "A"})

	suite.Nil(updated)
	suite.ErrorIs(err, domain.ErrPortfolioNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PortfolioRegistryTestSuite) TestDelete_RemovesFromCache() {
	p1 := domain.Portfolio{PortfolioID: "p1", UserID: testUserID, Name: "A"}
	p2 := domain.Portfolio{PortfolioID: "p2", UserID: testUserID, Name: "B"}
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{p1, p2}, nil).Once()
	suite.mockRepo.On("DeletePortfolio", suite.ctx, testUserID, "p1").Return(nil).Once()

	_, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.registry.Delete(suite.ctx, "p1"))

	listed, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal("p2", listed[0].PortfolioID)

	suite.Require().Len(suite.events, 1)
	suite.Equal(domain.PortfolioDeleted, suite.events[0].Kind)
	suite.Equal("A", suite.events[0].Portfolio.Name)
}

func (suite *PortfolioRegistryTestSuite) TestDelete_NoIdentity() {
	err := suite.anonymous.Delete(suite.ctx, "p1")

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeletePortfolio", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortfolioRegistryTestSuite) TestRefreshAndEvictReload() {
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{}, nil).Times(3)

	_, err := suite.registry.List(suite.ctx)
	suite.Require().NoError(err)
	_, err = suite.registry.Refresh(suite.ctx)
	suite.Require().NoError(err)
	suite.registry.Evict(testUserID)
	_, err = suite.registry.List(suite.ctx)
	suite.Require().NoError(err)

	suite.Require().Len(suite.events, 1)
	suite.Equal(domain.PortfoliosRefreshed, suite.events[0].Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestGet() {
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).
		Return([]domain.Portfolio{{PortfolioID: "p1", Name: "A"}}, nil).Once()

	p, err := suite.registry.Get(suite.ctx, "p1")
	suite.Require().NoError(err)
	suite.Equal("A", p.Name)

	_, err = suite.registry.Get(suite.ctx, "nope")
	suite.ErrorIs(err, domain.ErrPortfolioNotFound)
}

func (suite *PortfolioRegistryTestSuite) TestUnsubscribeStopsEvents() {
	var count int
	unsubscribe := suite.registry.Subscribe(func(domain.RegistryEvent) { count++ })
	suite.mockRepo.On("SavePortfolio", suite.ctx, mock.AnythingOfType("domain.Portfolio")).Return(nil).Twice()

	_, err := suite.registry.Create(suite.ctx, dto.PortfolioRequest{Name: "A"})
	suite.Require().NoError(err)
	unsubscribe()
	_, err = suite.registry.Create(suite.ctx, dto.PortfolioRequest{Name: "B"})
	suite.Require().NoError(err)

	suite.Equal(1, count)
}

// gatedPortfolioRepo holds its first ListPortfoliosByUser call until release is closed.
type gatedPortfolioRepo struct {
	*memory.Store
	once    sync.Once
	reading chan struct{}
	release chan struct{}
}

func (g *gatedPortfolioRepo) ListPortfoliosByUser(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		portfolios, err := g.Store.ListPortfoliosByUser(ctx, userID)
		close(g.reading)
		<-g.release
		return portfolios, err
	}
	return g.Store.ListPortfoliosByUser(ctx, userID)
}

func (suite *PortfolioRegistryTestSuite) TestCreateDuringColdLoadIsNotLost() {
	repo := &gatedPortfolioRepo{Store: memory.NewStore(), reading: make(chan struct{}), release: make(chan struct{})}
	registry := services.NewPortfolioRegistry(repo, staticIdentity{userID: testUserID})

	loaded := make(chan []domain.Portfolio, 1)
	go func() {
		portfolios, err := registry.List(suite.ctx)
		suite.NoError(err)
		loaded <- portfolios
	}()
	<-repo.reading

	created, err := registry.Create(suite.ctx, dto.PortfolioRequest{Name: "Main"})
	suite.Require().NoError(err)
	close(repo.release)
	suite.Empty(<-loaded)

	listed, err := registry.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(created.PortfolioID, listed[0].PortfolioID)

	got, err := registry.Get(suite.ctx, created.PortfolioID)
	suite.Require().NoError(err)
	suite.Equal("Main", got.Name)
}

type userCtxKey struct{}

// ctxIdentity resolves the user ID stored under userCtxKey.
type ctxIdentity struct{}

func (ctxIdentity) CurrentIdentity(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userCtxKey{}).(string)
	return userID, ok && userID != ""
}

func (suite *PortfolioRegistryTestSuite) TestCacheDropsLeastRecentUser() {
	registry := services.NewPortfolioRegistryWithCache(suite.mockRepo, ctxIdentity{}, 1, time.Hour)
	u1 := context.WithValue(suite.ctx, userCtxKey{}, "u1")
	u2 := context.WithValue(suite.ctx, userCtxKey{}, "u2")
	suite.mockRepo.On("ListPortfoliosByUser", mock.Anything, "u1").Return([]domain.Portfolio{}, nil).Twice()
	suite.mockRepo.On("ListPortfoliosByUser", mock.Anything, "u2").Return([]domain.Portfolio{}, nil).Once()

	for _, ctx := range []context.Context{u1, u2, u2, u1} {
		_, err := registry.List(ctx)
		suite.Require().NoError(err)
	}

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PortfolioRegistryTestSuite) TestCacheEntriesExpire() {
	registry := services.NewPortfolioRegistryWithCache(suite.mockRepo, staticIdentity{userID: testUserID}, 8, 20*time.Millisecond)
	suite.mockRepo.On("ListPortfoliosByUser", suite.ctx, testUserID).Return([]domain.Portfolio{}, nil).Twice()

	_, err := registry.List(suite.ctx)
	suite.Require().NoError(err)
	_, err = registry.List(suite.ctx)
	suite.Require().NoError(err)
	time.Sleep(60 * time.Millisecond)
	_, err = registry.List(suite.ctx)
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPortfolioRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(PortfolioRegistryTestSuite))
}
