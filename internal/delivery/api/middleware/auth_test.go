package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()
	active := &entity.Account{ID: accountID, Role: entity.RoleAdmin, State: lifecycle.Active()}
	deactivated := &entity.Account{ID: accountID, Role: entity.RoleOrganization}

	tests := []struct {
		name     string
		header   string
		setup    func(tokens *mockSvc.MockTokenService, accounts *mockRepo.MockAccountRepository)
		want     error
		wantRole entity.Role
	}{
		{
			name:   "missing header",
			header: "",
			setup:  func(*mockSvc.MockTokenService, *mockRepo.MockAccountRepository) {},
			want:   domainerrors.ErrUnauthorized,
		},
		{
			name:   "not bearer",
			header: "Basic abc",
			setup:  func(*mockSvc.MockTokenService, *mockRepo.MockAccountRepository) {},
			want:   domainerrors.ErrUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockSvc.MockTokenService, _ *mockRepo.MockAccountRepository) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			want: domainerrors.ErrUnauthorized,
		},
		{
			name:   "deactivated account",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService, accounts *mockRepo.MockAccountRepository) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID, Role: "organization"}, nil)
				accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(deactivated, nil)
			},
			want: domainerrors.ErrUnauthorized,
		},
		{
			name:   "deleted account",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService, accounts *mockRepo.MockAccountRepository) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID, Role: "organization"}, nil)
				accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(nil, repository.ErrAccountNotFound)
			},
			want: domainerrors.ErrUnauthorized,
		},
		{
			name:   "current role wins",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService, accounts *mockRepo.MockAccountRepository) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
					AccountID: accountID,
					Role:      "organization",
				}, nil)
				accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(active, nil)
			},
			wantRole: entity.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			accounts := mockRepo.NewMockAccountRepository(t)
			tt.setup(tokens, accounts)

			m := NewAuthMiddleware(AuthMiddlewareParams{
				TokenService: tokens,
				AccountRepo:  accounts,
				Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			var seen *entity.Identity
			c := newAuthContext(tt.header)
			err := m.Authenticate(func(c echo.Context) error {
				identity, ok := deliverycontext.GetIdentity(c)
				require.True(t, ok)
				seen = &identity

				return nil
			})(c)

			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
				assert.Nil(t, seen)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, seen)
			assert.Equal(t, accountID, seen.AccountID)
			assert.Equal(t, tt.wantRole, seen.Role)
		})
	}
}

func TestAuthMiddleware_Authenticate_StoreFailure(t *testing.T) {
	accountID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	accounts := mockRepo.NewMockAccountRepository(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID, Role: "viewer"}, nil)
	accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(nil, errors.New("connection refused"))

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		AccountRepo:  accounts,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	err := m.Authenticate(func(echo.Context) error { return nil })(newAuthContext("Bearer good"))
	_, ok := errors.AsType[*domainerrors.StoreUnavailableError](err)
	assert.True(t, ok)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := &AuthMiddleware{}
	handler := m.RequireRole(entity.RoleOrganization, entity.RoleAdmin)(func(echo.Context) error { return nil })

	c := newAuthContext("")
	require.ErrorIs(t, handler(c), domainerrors.ErrUnauthorized)

	deliverycontext.SetIdentity(c, entity.Identity{AccountID: uuid.New(), Role: entity.RoleViewer})
	require.ErrorIs(t, handler(c), domainerrors.ErrForbidden)

	deliverycontext.SetIdentity(c, entity.Identity{AccountID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, handler(c))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		status   int
		contains string
		omits    string
	}{
		{
			name:     "validation details",
			err:      domainerrors.NewValidationError(domainerrors.FieldError{Field: "title", Message: "is required"}),
			status:   http.StatusBadRequest,
			contains: `"field":"title"`,
		},
		{
			name:   "store failure is opaque",
			err:    domainerrors.NewStoreUnavailableError(errors.New("dial tcp 10.0.0.1:5432"), "list claims"),
			status: http.StatusServiceUnavailable,
			omits:  "10.0.0.1",
		},
		{
			name:   "forbidden drops details",
			err:    domainerrors.ErrForbidden.WithDetails("role viewer is not allowed here"),
			status: http.StatusForbidden,
			omits:  "viewer",
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			status:   http.StatusMethodNotAllowed,
			contains: "HTTP_ERROR",
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			omits:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(errors.WithStack(tt.err), c)

			assert.Equal(t, tt.status, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
			if tt.omits != "" {
				assert.NotContains(t, rec.Body.String(), tt.omits)
			}
		})
	}
}
