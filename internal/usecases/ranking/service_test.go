package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBusRankingService_GetBusRanking(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		expectKey string
		wantErr   bool
	}{
		{name: "Sem mês usa o mês de ontem", month: "", expectKey: "02-2024"},
		{name: "Formato YYYY-MM", month: "2023-11", expectKey: "11-2023"},
		{name: "Formato mm-yyyy", month: "11-2023", expectKey: "11-2023"},
		{name: "Mês inválido", month: "novembro", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockBusRankingRepository(ctrl)

			service := &BusRankingService{
				BusRankingRepository: repo,
				// 1º de março: ontem ainda é fevereiro
				now: func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) },
			}

			if !tt.wantErr {
				repo.EXPECT().GetRanking(gomock.Any(), tt.expectKey).Return(&domain.BusRankingResponse{Month: tt.expectKey}, nil)
			}

			result, err := service.GetBusRanking(context.Background(), tt.month)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectKey, result.Month)
		})
	}
}
