package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AccountRepo  repository.AccountRepository
	Logger       *slog.Logger
}

// AuthMiddleware turns a bearer token into the caller identity.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    params.TokenService,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// Authenticate validates the access token and stores the identity on the
// request. The account must still exist and be active; its current role
// wins over the role in the token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		ctx := c.Request().Context()
		account, err := m.accountRepo.FindAccountByID(ctx, claims.AccountID)
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			return domainerrors.ErrUnauthorized.WithDetails("account no longer exists")
		case err != nil:
			return domainerrors.NewStoreUnavailableError(err, "authenticate")
		case !account.Active():
			return domainerrors.ErrUnauthorized.WithDetails("account is deactivated")
		}

		deliverycontext.SetIdentity(c, entity.Identity{AccountID: account.ID, Role: account.Role})
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Request authenticated",
			slog.String("account_id", account.ID.String()),
			slog.String("role", account.Role.String()),
		)

		return next(c)
	}
}

// RequireRole admits callers holding one of the roles. It must be used
// after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !slices.Contains(roles, identity.Role) {
				return domainerrors.ErrForbidden.WithDetails("role " + identity.Role.String() + " is not allowed here")
			}

			return next(c)
		}
	}
}

// Identity returns the caller stored by Authenticate.
func Identity(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthorized
	}

	return identity, nil
}
