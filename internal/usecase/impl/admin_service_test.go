package impl

import (
	"context"
	"testing"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ListAccounts(t *testing.T) {
	fx := newLedgerFixture(t)
	fx.register(t, "admin@example.com", entity.RoleAdmin)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	fx.register(t, "viewer@example.com", entity.RoleViewer)
	fx.claim(t, org, "Org", "Springfield")

	listing, err := fx.admin.ListAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, listing.Total)
	assert.Equal(t, map[entity.Role]int{
		entity.RoleAdmin:        1,
		entity.RoleOrganization: 1,
		entity.RoleViewer:       1,
	}, listing.ByRole)

	for _, account := range listing.Accounts {
		if account.ID == org.AccountID {
			assert.Equal(t, int64(1), account.ActiveClaims)
		}
	}
}

func TestAdminService_ListAccounts_Empty(t *testing.T) {
	fx := newLedgerFixture(t)

	listing, err := fx.admin.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, listing.Total)
	assert.Len(t, listing.ByRole, len(entity.AllRoles()))
}

func TestAdminService_UpdateRole(t *testing.T) {
	fx := newLedgerFixture(t)
	admin := fx.register(t, "admin@example.com", entity.RoleAdmin)
	viewer := fx.register(t, "viewer@example.com", entity.RoleViewer)

	tests := []struct {
		name      string
		accountID uuid.UUID
		role      entity.Role
		want      error
	}{
		{name: "unknown role", accountID: viewer.AccountID, role: entity.Role("owner"), want: domainerrors.ErrInvalidRole},
		{name: "own role", accountID: admin.AccountID, role: entity.RoleViewer, want: domainerrors.ErrForbidden},
		{name: "missing account", accountID: uuid.New(), role: entity.RoleViewer, want: domainerrors.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.admin.UpdateRole(context.Background(), admin, tt.accountID, tt.role)
			require.ErrorIs(t, err, tt.want)
		})
	}

	account, err := fx.admin.UpdateRole(context.Background(), admin, viewer.AccountID, entity.RoleOrganization)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOrganization, account.Role)

	promoted := entity.Identity{AccountID: viewer.AccountID, Role: account.Role}
	fx.claim(t, promoted, "Promoted", "Springfield")
}

func TestAdminService_DeactivateAccount(t *testing.T) {
	fx := newLedgerFixture(t)
	admin := fx.register(t, "admin@example.com", entity.RoleAdmin)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	viewer := fx.register(t, "viewer@example.com", entity.RoleViewer)

	springfield := fx.claim(t, org, "Org", "Springfield")
	fx.claim(t, org, "Org", "Shelbyville")
	code := fx.issue(t, org, springfield.ID)

	err := fx.admin.DeactivateAccount(context.Background(), admin, admin.AccountID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.admin.DeactivateAccount(context.Background(), admin, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	require.NoError(t, fx.admin.DeactivateAccount(context.Background(), admin, org.AccountID))

	_, err = fx.accounts.Login(context.Background(), "org@example.com", "correct-horse")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.ratings.RedeemCode(context.Background(), viewer, &usecase.RedeemCodeInput{Code: code.Code, Score: 4})
	require.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredCode)

	claims, err := fx.claims.ListActiveClaims(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, claims)

	released := 0
	for _, event := range fx.events.events {
		if event.Type == service.EventClaimReleased {
			released++
		}
	}
	assert.Equal(t, 2, released)

	fx.claim(t, fx.register(t, "next@example.com", entity.RoleOrganization), "Next", "springfield")
}
