package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput creates an account. An organization may claim its first
// location in the same step.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Claim    *ClaimLocationInput
}

// AuthOutput is returned by Register and Login.
type AuthOutput struct {
	Account     *entity.Account        `json:"account"`
	AccessToken string                 `json:"access_token"`
	ExpiresAt   time.Time              `json:"expires_at"`
	Claims      []*entity.ClaimSummary `json:"claims"`
}

// ProfileOutput is the caller's account with its active claims.
type ProfileOutput struct {
	Account *entity.Account        `json:"account"`
	Claims  []*entity.ClaimSummary `json:"claims"`
}

// AccountUsecase handles registration and login.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	Login(ctx context.Context, email, password string) (*AuthOutput, error)

	Profile(ctx context.Context, identity entity.Identity) (*ProfileOutput, error)
}

// AccountListing is the administrator view of every account.
type AccountListing struct {
	Accounts []*entity.AccountSummary `json:"accounts"`
	Total    int                      `json:"total"`
	ByRole   map[entity.Role]int      `json:"by_role"`
}

// AdminUsecase is restricted to administrators.
type AdminUsecase interface {
	ListAccounts(ctx context.Context) (*AccountListing, error)

	UpdateRole(ctx context.Context, identity entity.Identity, accountID uuid.UUID, role entity.Role) (*entity.Account, error)

	// DeactivateAccount deactivates the account and releases its claims.
	DeactivateAccount(ctx context.Context, identity entity.Identity, accountID uuid.UUID) error
}
