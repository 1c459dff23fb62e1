package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	authmocks "github.com/vfg2006/transport-admin-api/internal/usecases/authenticating/mocks"
	fleetmocks "github.com/vfg2006/transport-admin-api/internal/usecases/fleet/mocks"
	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) (http.Handler, *authmocks.MockAuthenticator, *fleetmocks.MockFleetService) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	fleetService := fleetmocks.NewMockFleetService(ctrl)

	srv, err := New(&config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://painel.local"}},
	}, Services{
		DB:            okPinger{},
		Authenticator: auth,
		Fleet:         fleetService,
	})
	require.NoError(t, err)

	return srv.Handler(), auth, fleetService
}

func TestServer_Chain(t *testing.T) {
	t.Run("Healthcheck é público", func(t *testing.T) {
		handler, _, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		handler, _, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/buses", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token válido chega ao handler", func(t *testing.T) {
		handler, auth, fleetService := newTestServer(t)
		auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: 2, UserRole: domain.RoleManager}, nil)
		fleetService.EXPECT().ListBuses(gomock.Any(), "").Return([]*domain.Bus{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/buses", nil)
		req.Header.Set("Authorization", "Bearer abc")
		req.Header.Set("Origin", "http://painel.local")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://painel.local", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Sem hub a rota ao vivo não existe", func(t *testing.T) {
		handler, auth, _ := newTestServer(t)
		auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/live?token=abc", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
