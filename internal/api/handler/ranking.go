package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

// GetBusRanking aceita ?month= em YYYY-MM ou mm-yyyy; sem mês usa o mês de ontem
func GetBusRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")

		result, err := service.GetBusRanking(r.Context(), month)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, result)
		case errors.Is(err, ranking.ErrInvalidMonth):
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		default:
			logrus.WithError(err).WithField("month", month).Error("Erro ao buscar ranking de ônibus")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking", nil)
		}
	}
}
