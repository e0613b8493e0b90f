package domain

// RegistryEventKind names a portfolio registry mutation.
type RegistryEventKind string

const (
	PortfolioCreated    RegistryEventKind = "created"
	PortfolioUpdated    RegistryEventKind = "updated"
	PortfolioDeleted    RegistryEventKind = "deleted"
	PortfoliosRefreshed RegistryEventKind = "refreshed"
)

// RegistryEvent is delivered to registry subscribers after a confirmed mutation.
// Portfolio is nil for refresh events.
type RegistryEvent struct {
	Kind      RegistryEventKind
	UserID    string
	Portfolio *Portfolio
}

// TransactionAdded is delivered after a ledger entry was persisted.
// BalanceUpdated is false when the balance increment failed.
type TransactionAdded struct {
	Transaction    Transaction
	BalanceUpdated bool
}

// IdentityChange is pushed when a user signs in or out.
type IdentityChange struct {
	UserID   string
	SignedIn bool
}
