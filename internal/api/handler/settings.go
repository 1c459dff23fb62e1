package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

func GetAppVersion(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.GetAppVersion(r.Context())
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func UpdateAppVersion(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AppVersionConfig
		if !decodeAndValidate(w, r, &req) {
			return
		}

		cfg, err := service.UpdateAppVersion(r.Context(), req)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

// ListDeparturePlaces aceita ?active=false para incluir os inativos
func ListDeparturePlaces(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places, err := service.ListDeparturePlaces(r.Context(), queryBool(r, "active", true))
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, places)
	}
}

func handleSettingsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, configuring.ErrNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, configuring.ErrMinimumAboveCurrent):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro nas configurações")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar as configurações", nil)
	}
}
