package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetBusRanking(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		month      string
		result     *domain.BusRankingResponse
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Mês informado",
			target:     "/v1/ranking/buses?month=03-2024",
			month:      "03-2024",
			result:     &domain.BusRankingResponse{Month: "03-2024", Ranking: []domain.BusRankingItem{{BusNumber: "12"}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Mês de ontem por padrão",
			target:     "/v1/ranking/buses",
			result:     &domain.BusRankingResponse{Month: "02-2024"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Mês inválido",
			target:     "/v1/ranking/buses?month=marzo",
			month:      "marzo",
			err:        fmt.Errorf("%w: formato", ranking.ErrInvalidMonth),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Erro de banco",
			target:     "/v1/ranking/buses",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockRankingService(gomock.NewController(t))
			service.EXPECT().GetBusRanking(gomock.Any(), tt.month).Return(tt.result, tt.err)

			rec := serve(BusRanking(service), managerClaims, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
				return
			}
			assert.Equal(t, tt.result.Month, decodeBody[domain.BusRankingResponse](t, rec).Month)
		})
	}
}
