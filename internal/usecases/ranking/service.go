package ranking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

var ErrInvalidMonth = errors.New("mês inválido")

type RankingService interface {
	// GetBusRanking aceita YYYY-MM ou mm-yyyy; vazio usa o mês de ontem
	GetBusRanking(ctx context.Context, month string) (*domain.BusRankingResponse, error)
}

type BusRankingService struct {
	BusRankingRepository repository.BusRankingRepository
	now                  func() time.Time
}

func NewBusRankingService(busRankingRepository repository.BusRankingRepository) RankingService {
	return &BusRankingService{
		BusRankingRepository: busRankingRepository,
		now:                  time.Now,
	}
}

func (s *BusRankingService) GetBusRanking(ctx context.Context, month string) (*domain.BusRankingResponse, error) {
	key := utils.RankingMonth(s.now().AddDate(0, 0, -1))
	if month != "" {
		normalized, err := utils.NormalizeRankingMonth(month)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
		}
		key = normalized
	}

	return s.BusRankingRepository.GetRanking(ctx, key)
}
