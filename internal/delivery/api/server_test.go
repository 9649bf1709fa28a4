package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger/config"
	apimiddleware "ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/router"
	"ledger/internal/delivery/api/router/handler"
	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/infra/auth"
	"ledger/internal/infra/otp"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/infra/qrcode"
	"ledger/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiClient struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	cfg := &config.Config{
		Auth:   &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour, MinPassword: 8},
		Ledger: &config.LedgerConfig{CodeLength: 6, CodeTTL: time.Hour, CodeIssueAttempts: 5},
		QRCode: &config.QRCodeConfig{Size: 128, CacheSize: 4},
	}
	cfg.HTTP.MaxRequestBodySize = "64KB"
	cfg.SecretKey.Access = "api-test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	accountRepo := memory.NewAccountRepository(store)
	claimRepo := memory.NewClaimRepository(store)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	qr, err := qrcode.NewQRCodeService(cfg)
	require.NoError(t, err)

	claimUC := impl.NewClaimService(impl.ClaimServiceParams{TxManager: txManager, ClaimRepo: claimRepo, Logger: logger})
	ratingUC := impl.NewRatingService(impl.RatingServiceParams{
		TxManager:  txManager,
		ClaimRepo:  claimRepo,
		RatingRepo: memory.NewRatingRepository(store),
		Logger:     logger,
	})

	routerParams := router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			AccountUC: impl.NewAccountService(impl.AccountServiceParams{
				TxManager:    txManager,
				AccountRepo:  accountRepo,
				ClaimRepo:    claimRepo,
				Hasher:       auth.NewBcryptHasher(cfg),
				TokenService: tokens,
				Config:       cfg,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		ClaimHandler: handler.NewClaimHandler(handler.ClaimHandlerParams{ClaimUC: claimUC, RatingUC: ratingUC, Logger: logger}),
		EventCodeHandler: handler.NewEventCodeHandler(handler.EventCodeHandlerParams{
			EventCodeUC: impl.NewEventCodeService(impl.EventCodeServiceParams{
				TxManager:     txManager,
				ClaimRepo:     claimRepo,
				EventCodeRepo: memory.NewEventCodeRepository(store),
				Generator:     otp.NewGenerator(cfg),
				QRCode:        qr,
				Config:        cfg,
				Logger:        logger,
			}),
			Logger: logger,
		}),
		RatingHandler: handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: ratingUC, Logger: logger}),
		TemplateHandler: handler.NewTemplateHandler(handler.TemplateHandlerParams{
			TemplateUC: impl.NewTemplateService(impl.TemplateServiceParams{
				TxManager:    txManager,
				TemplateRepo: memory.NewTemplateRepository(store),
				Logger:       logger,
			}),
			Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AdminUC: impl.NewAdminService(impl.AdminServiceParams{TxManager: txManager, AccountRepo: accountRepo, Logger: logger}),
			Logger:  logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			AccountRepo:  accountRepo,
			Logger:       logger,
		}),
	}

	return &apiClient{t: t, echo: NewEcho(cfg, logger, routerParams)}
}

func (a *apiClient) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *apiClient) decode(rec *httptest.ResponseRecorder, data any) *envelope {
	a.t.Helper()

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(a.t, json.Unmarshal(env.Data, data))
	}

	return &env
}

func (a *apiClient) register(email, role string, claim map[string]string) (token string, claimID string) {
	a.t.Helper()

	body := map[string]any{"name": email, "email": email, "password": "correct-horse", "role": role}
	if claim != nil {
		body["claim"] = claim
	}
	rec := a.do(http.MethodPost, "/auth/register", "", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
		Claims      []struct {
			ID string `json:"id"`
		} `json:"claims"`
	}
	a.decode(rec, &out)
	if len(out.Claims) > 0 {
		claimID = out.Claims[0].ID
	}

	return out.AccessToken, claimID
}

func TestAPI_RatingFlow(t *testing.T) {
	api := newTestAPI(t)

	orgToken, claimID := api.register("org@example.com", "organization", map[string]string{"name": "Org", "location": "Springfield"})
	require.NotEmpty(t, claimID)
	viewerToken, _ := api.register("viewer@example.com", "viewer", nil)

	rec := api.do(http.MethodGet, "/api/v1/claims?q=spring", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var claims []map[string]any
	api.decode(rec, &claims)
	require.Len(t, claims, 1)

	rec = api.do(http.MethodPost, "/api/v1/claims/"+claimID+"/codes", orgToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var code struct {
		Code string `json:"code"`
	}
	api.decode(rec, &code)
	require.Len(t, code.Code, 6)

	rec = api.do(http.MethodGet, "/api/v1/claims/"+claimID+"/codes/active/qr", orgToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = api.do(http.MethodPost, "/api/v1/ratings", viewerToken, map[string]any{"code": code.Code, "score": 5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/v1/ratings", viewerToken, map[string]any{"code": code.Code, "score": 4})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_RATING", api.decode(rec, nil).Error.Code)

	rec = api.do(http.MethodPost, "/api/v1/ratings", orgToken, map[string]any{"code": code.Code, "score": 5})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "SELF_RATING_FORBIDDEN", api.decode(rec, nil).Error.Code)

	rec = api.do(http.MethodGet, "/api/v1/claims/"+claimID+"/ratings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ratings struct {
		Stats struct {
			Count   int64   `json:"count"`
			Average float64 `json:"average"`
		} `json:"stats"`
	}
	api.decode(rec, &ratings)
	assert.Equal(t, int64(1), ratings.Stats.Count)

	rec = api.do(http.MethodDelete, "/api/v1/claims/"+claimID, orgToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/claims/"+claimID+"/codes/active", orgToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CLAIM_NOT_FOUND", api.decode(rec, nil).Error.Code)
}

func TestAPI_Errors(t *testing.T) {
	api := newTestAPI(t)
	viewerToken, _ := api.register("viewer@example.com", "viewer", nil)

	t.Run("missing token", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := api.decode(rec, nil)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})

	t.Run("bad token", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/me", "not-a-token", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/claims", viewerToken, map[string]string{"name": "V", "location": "Oak"})
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", api.decode(rec, nil).Error.Code)
	})

	t.Run("validation details", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "not-an-email", "password": "correct-horse"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := api.decode(rec, nil)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		var fields []struct {
			Field string `json:"field"`
		}
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Field)
		}
		assert.ElementsMatch(t, []string{"name", "email"}, names)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/ratings", viewerToken, "{not json")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", api.decode(rec, nil).Error.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/ratings", viewerToken, map[string]any{"code": "123456", "score": 9})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SCORE_OUT_OF_RANGE", api.decode(rec, nil).Error.Code)
	})

	t.Run("bad path id", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/claims/not-a-uuid", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/nowhere", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", api.decode(rec, nil).Error.Code)
	})

	t.Run("request id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		api.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-42", api.decode(rec, nil).Meta.RequestID)
	})
}

func TestAPI_TemplatesAndAdmin(t *testing.T) {
	api := newTestAPI(t)
	orgToken, claimID := api.register("org@example.com", "organization", map[string]string{"name": "Org", "location": "Springfield"})
	viewerToken, _ := api.register("viewer@example.com", "viewer", nil)

	rec := api.do(http.MethodPost, "/api/v1/templates", orgToken, map[string]any{
		"title":    "Sweep the hall",
		"claim_id": claimID,
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var template struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	api.decode(rec, &template)
	assert.Equal(t, "pending", template.Status)
	assert.Equal(t, "high", template.Priority)

	rec = api.do(http.MethodPatch, "/api/v1/templates/"+template.ID, orgToken, map[string]any{"status": "done"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/templates?status=pending", viewerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var templates []map[string]any
	api.decode(rec, &templates)
	assert.Len(t, templates, 1)

	rec = api.do(http.MethodDelete, "/api/v1/templates/"+template.ID, orgToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/admin/accounts", orgToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
