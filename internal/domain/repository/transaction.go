package repository

import "context"

// TransactionManager runs multi-step ledger writes atomically. A claim and
// its codes, or a code and the rating redeemed against it, change together
// or not at all.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. The
	// repositories handed to fn share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to one transaction.
type RepositoryFactory interface {
	NewAccountRepository() AccountRepository
	NewClaimRepository() ClaimRepository
	NewEventCodeRepository() EventCodeRepository
	NewRatingRepository() RatingRepository
	NewTemplateRepository() TemplateRepository
}
