package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring/mocks"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetAppVersion(t *testing.T) {
	t.Run("Qualquer papel consulta", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))
		service.EXPECT().GetAppVersion(gomock.Any()).Return(&domain.AppVersionConfig{CurrentVersion: "1.4.0"}, nil)

		rec := serve(Settings(service), driverClaims, http.MethodGet, "/v1/settings/app-version", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1.4.0", decodeBody[domain.AppVersionConfig](t, rec).CurrentVersion)
	})

	t.Run("Ainda não configurado", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))
		service.EXPECT().GetAppVersion(gomock.Any()).Return(nil, configuring.ErrNotConfigured)

		rec := serve(Settings(service), driverClaims, http.MethodGet, "/v1/settings/app-version", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateAppVersion(t *testing.T) {
	body := `{"apk_url":"https://doramald.com/app.apk","current_version":"1.4.0","minimum_version":"1.2.0","mandatory":true}`

	t.Run("Administrador atualiza", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))
		service.EXPECT().
			UpdateAppVersion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg domain.AppVersionConfig) (*domain.AppVersionConfig, error) {
				assert.True(t, cfg.Mandatory)
				return &cfg, nil
			})

		rec := serve(Settings(service), adminClaims, http.MethodPut, "/v1/settings/app-version", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Gerente não atualiza", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))

		rec := serve(Settings(service), managerClaims, http.MethodPut, "/v1/settings/app-version", body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("URL inválida", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))

		rec := serve(Settings(service), adminClaims, http.MethodPut, "/v1/settings/app-version",
			`{"apk_url":"nada","current_version":"1.4.0","minimum_version":"1.2.0"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})

	t.Run("Mínima acima da atual", func(t *testing.T) {
		service := mocks.NewMockSettingsService(gomock.NewController(t))
		service.EXPECT().UpdateAppVersion(gomock.Any(), gomock.Any()).Return(nil, configuring.ErrMinimumAboveCurrent)

		rec := serve(Settings(service), adminClaims, http.MethodPut, "/v1/settings/app-version", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})
}

func TestListDeparturePlaces(t *testing.T) {
	service := mocks.NewMockSettingsService(gomock.NewController(t))
	gomock.InOrder(
		service.EXPECT().ListDeparturePlaces(gomock.Any(), true).Return(nil, nil),
		service.EXPECT().ListDeparturePlaces(gomock.Any(), false).Return(nil, nil),
	)

	assert.Equal(t, http.StatusOK, serve(Settings(service), driverClaims, http.MethodGet, "/v1/departure-places", "").Code)
	assert.Equal(t, http.StatusOK, serve(Settings(service), driverClaims, http.MethodGet, "/v1/departure-places?active=false", "").Code)
}
