package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	adminClaims := &domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}

	tests := []struct {
		name     string
		request  func() *http.Request
		setup    func(auth *mocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Rota pública não exige token",
			request: func() *http.Request { return httptest.NewRequest(http.MethodPost, "/v1/login", nil) },
			setup:   func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Sem header de autorização",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/stats", nil) },
			setup:   func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
			},
		},
		{
			name: "Header sem Bearer",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
				req.Header.Set("Authorization", "abc")
				return req
			},
			setup: func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name: "Token expirado",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
				req.Header.Set("Authorization", "Bearer velho")
				return req
			},
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.ErrExpiredToken)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrExpiredToken, decodeError(t, rec).Code)
			},
		},
		{
			name: "Token válido coloca claims no contexto",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
				req.Header.Set("Authorization", "Bearer bom")
				return req
			},
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(adminClaims, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Websocket aceita token na query",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/live?token=bom", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(adminClaims, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Token na query só vale para o websocket",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/stats?token=bom", nil) },
			setup:   func(auth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var seen *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			AuthMiddleware(auth)(next).ServeHTTP(rec, tt.request())
			tt.validate(t, rec)

			if rec.Code == http.StatusNoContent && tt.request().URL.Path != "/v1/login" {
				assert.Equal(t, adminClaims, seen)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{"Sem usuário autenticado", nil, AdminOnly(), http.StatusUnauthorized},
		{"Gerente em rota de administrador", &domain.Claims{UserRole: domain.RoleManager}, AdminOnly(), http.StatusForbidden},
		{"Gerente em rota de gerência", &domain.Claims{UserRole: domain.RoleManager}, AdminOrManager(), http.StatusNoContent},
		{"Motorista em rota de gerência", &domain.Claims{UserRole: domain.RoleDriver}, AdminOrManager(), http.StatusForbidden},
		{"Qualquer papel", &domain.Claims{UserRole: domain.RoleClient}, AllRoles(), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}

			rec := httptest.NewRecorder()
			tt.middleware(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://painel.local"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/stats", nil)
	req.Header.Set("Origin", "http://painel.local")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://painel.local", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set("Origin", "http://outro.local")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(config.LoginLimit{RPS: 0.001, Burst: 2})(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))

	disabled := RateLimit(config.LoginLimit{})(okHandler())
	for range 10 {
		rec := httptest.NewRecorder()
		disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
