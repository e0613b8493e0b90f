package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultRegistryCacheSize = 1024
	defaultRegistryCacheTTL  = 15 * time.Minute
)

// portfolioRegistry caches each user's portfolios after the first read and keeps
// the cache in step with every confirmed mutation. Entries expire after a TTL and
// the least recently used user is dropped once the cache is full.
type portfolioRegistry struct {
	BaseService
	repo portsrepo.PortfolioRepositoryFacade

	// mu serialises compound cache updates. epoch advances on every mutation and
	// eviction, and a load only installs its result if epoch did not move while
	// it was reading the repository.
	mu    sync.Mutex
	epoch uint64
	cache *expirable.LRU[string, []domain.Portfolio] // user ID -> portfolios, oldest first

	events observers[domain.RegistryEvent]
}

// NewPortfolioRegistry creates the portfolio registry with the default cache bounds.
func NewPortfolioRegistry(repo portsrepo.PortfolioRepositoryFacade, identity portssvc.IdentityResolver) portssvc.PortfolioRegistry {
	return NewPortfolioRegistryWithCache(repo, identity, defaultRegistryCacheSize, defaultRegistryCacheTTL)
}

// NewPortfolioRegistryWithCache creates the portfolio registry holding at most size users
// for ttl each. Non-positive values fall back to the defaults.
func NewPortfolioRegistryWithCache(repo portsrepo.PortfolioRepositoryFacade, identity portssvc.IdentityResolver, size int, ttl time.Duration) portssvc.PortfolioRegistry {
	if size <= 0 {
		size = defaultRegistryCacheSize
	}
	if ttl <= 0 {
		ttl = defaultRegistryCacheTTL
	}
	return &portfolioRegistry{
		BaseService: BaseService{Identity: identity},
		repo:        repo,
		cache:       expirable.NewLRU[string, []domain.Portfolio](size, nil, ttl),
	}
}

func (r *portfolioRegistry) Subscribe(fn func(domain.RegistryEvent)) func() {
	return r.events.subscribe(fn)
}

func (r *portfolioRegistry) List(ctx context.Context) ([]domain.Portfolio, error) {
	userID, ok := r.CurrentIdentity(ctx)
	if !ok {
		return []domain.Portfolio{}, nil
	}

	if cached, hit := r.cache.Get(userID); hit {
		return clonePortfolios(cached), nil
	}
	return r.load(ctx, userID)
}

func (r *portfolioRegistry) Get(ctx context.Context, portfolioID string) (*domain.Portfolio, error) {
	portfolios, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range portfolios {
		if portfolios[i].PortfolioID == portfolioID {
			return &portfolios[i], nil
		}
	}
	return nil, domain.ErrPortfolioNotFound
}

func (r *portfolioRegistry) Create(ctx context.Context, req dto.PortfolioRequest) (*domain.Portfolio, error) {
	portfolio, err := portfolioFromRequest(req)
	if err != nil {
		return nil, err
	}
	userID, err := r.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	portfolio.PortfolioID = uuid.NewString()
	portfolio.UserID = userID
	portfolio.CreatedAt = now
	portfolio.LastUpdatedAt = now

	if err := r.repo.SavePortfolio(ctx, portfolio); err != nil {
		r.LogError(ctx, err, "Failed to save portfolio")
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	r.mu.Lock()
	r.epoch++
	if cached, hit := r.cache.Peek(userID); hit {
		r.cache.Add(userID, append(clonePortfolios(cached), portfolio))
	}
	r.mu.Unlock()

	r.LogInfo(ctx, "Portfolio created", slog.String("portfolio_id", portfolio.PortfolioID))
	r.events.notify(domain.RegistryEvent{Kind: domain.PortfolioCreated, UserID: userID, Portfolio: &portfolio})
	return &portfolio, nil
}

func (r *portfolioRegistry) Update(ctx context.Context, portfolioID string, req dto.PortfolioRequest) (*domain.Portfolio, error) {
	portfolio, err := portfolioFromRequest(req)
	if err != nil {
		return nil, err
	}
	userID, err := r.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	portfolio.PortfolioID = portfolioID
	portfolio.UserID = userID
	portfolio.LastUpdatedAt = time.Now().UTC()

	if err := r.repo.UpdatePortfolio(ctx, portfolio); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrPortfolioNotFound
		}
		r.LogError(ctx, err, "Failed to update portfolio", slog.String("portfolio_id", portfolioID))
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}

	createdAt, cached := r.replaceCached(userID, portfolio)
	if cached {
		portfolio.CreatedAt = createdAt
	} else {
		stored, err := r.repo.FindPortfolioByID(ctx, userID, portfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to read updated portfolio: %w", err)
		}
		portfolio = *stored
	}

	r.events.notify(domain.RegistryEvent{Kind: domain.PortfolioUpdated, UserID: userID, Portfolio: &portfolio})
	return &portfolio, nil
}

func (r *portfolioRegistry) Delete(ctx context.Context, portfolioID string) error {
	userID, err := r.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	if err := r.repo.DeletePortfolio(ctx, userID, portfolioID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ErrPortfolioNotFound
		}
		r.LogError(ctx, err, "Failed to delete portfolio", slog.String("portfolio_id", portfolioID))
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	var removed *domain.Portfolio
	r.mu.Lock()
	r.epoch++
	if cached, hit := r.cache.Peek(userID); hit {
		kept := make([]domain.Portfolio, 0, len(cached))
		for i := range cached {
			if cached[i].PortfolioID == portfolioID {
				p := cached[i]
				removed = &p
				continue
			}
			kept = append(kept, cached[i])
		}
		r.cache.Add(userID, kept)
	}
	r.mu.Unlock()

	if removed == nil {
		removed = &domain.Portfolio{PortfolioID: portfolioID, UserID: userID}
	}
	r.LogInfo(ctx, "Portfolio deleted", slog.String("portfolio_id", portfolioID))
	r.events.notify(domain.RegistryEvent{Kind: domain.PortfolioDeleted, UserID: userID, Portfolio: removed})
	return nil
}

func (r *portfolioRegistry) Refresh(ctx context.Context) ([]domain.Portfolio, error) {
	userID, ok := r.CurrentIdentity(ctx)
	if !ok {
		return []domain.Portfolio{}, nil
	}
	portfolios, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.events.notify(domain.RegistryEvent{Kind: domain.PortfoliosRefreshed, UserID: userID})
	return portfolios, nil
}

func (r *portfolioRegistry) Evict(userID string) {
	r.mu.Lock()
	r.epoch++
	r.cache.Remove(userID)
	r.mu.Unlock()
}

// load reads userID's portfolios from the repository and caches them, unless a
// mutation or eviction happened during the read.
func (r *portfolioRegistry) load(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	r.mu.Lock()
	start := r.epoch
	r.mu.Unlock()

	portfolios, err := r.repo.ListPortfoliosByUser(ctx, userID)
	if err != nil {
		r.LogError(ctx, err, "Failed to load portfolios")
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	sort.SliceStable(portfolios, func(i, j int) bool {
		return portfolios[i].CreatedAt.Before(portfolios[j].CreatedAt)
	})

	r.mu.Lock()
	if r.epoch == start {
		r.cache.Add(userID, clonePortfolios(portfolios))
	} else {
		r.LogDebug(ctx, "Skipped caching portfolios changed during load")
	}
	r.mu.Unlock()

	return portfolios, nil
}

// replaceCached overwrites the cached copy of p and reports the creation time it kept.
func (r *portfolioRegistry) replaceCached(userID string, p domain.Portfolio) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	cached, hit := r.cache.Peek(userID)
	if !hit {
		return time.Time{}, false
	}
	updated := clonePortfolios(cached)
	for i := range updated {
		if updated[i].PortfolioID == p.PortfolioID {
			p.CreatedAt = updated[i].CreatedAt
			updated[i] = p
			r.cache.Add(userID, updated)
			return p.CreatedAt, true
		}
	}
	return time.Time{}, false
}

// portfolioFromRequest applies defaults and validates the mutable fields.
func portfolioFromRequest(req dto.PortfolioRequest) (domain.Portfolio, error) {
	p := domain.Portfolio{
		Name:    req.Name,
		BuyFee:  domain.DefaultFee,
		SellFee: domain.DefaultFee,
	}
	if req.AccountNumber != nil {
		p.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.BuyFee != nil {
		p.BuyFee = *req.BuyFee
	}
	if req.SellFee != nil {
		p.SellFee = *req.SellFee
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Portfolio{}, err
	}
	return p, nil
}

func clonePortfolios(in []domain.Portfolio) []domain.Portfolio {
	out := make([]domain.Portfolio, len(in))
	copy(out, in)
	return out
}
