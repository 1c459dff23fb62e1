package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const historyKey = "history"

type loadFunc func(ctx context.Context) ([]domain.SaleRecord, error)

// historyCache memoriza o histórico por ttl. Cargas simultâneas são agrupadas e uma
// invalidação durante a carga impede que o resultado antigo seja guardado.
// O slice devolvido é compartilhado e não deve ser alterado.
type historyCache struct {
	mu         sync.RWMutex
	records    []domain.SaleRecord
	loadedAt   time.Time
	generation uint64
	ttl        time.Duration
	group      singleflight.Group
	now        func() time.Time
}

func newHistoryCache(ttl time.Duration) *historyCache {
	return &historyCache{ttl: ttl, now: time.Now}
}

func (c *historyCache) get(ctx context.Context, load loadFunc) ([]domain.SaleRecord, error) {
	c.mu.RLock()
	if c.records != nil && c.ttl > 0 && c.now().Sub(c.loadedAt) < c.ttl {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	generation := c.generation
	c.mu.RUnlock()

	v, err, _ := c.group.Do(historyKey, func() (any, error) {
		records, err := load(ctx)
		if err != nil {
			return nil, err
		}
		metrics.HistoryLoads.Inc()

		c.mu.Lock()
		if c.generation == generation && c.ttl > 0 {
			c.records = records
			c.loadedAt = c.now()
		}
		c.mu.Unlock()

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.SaleRecord), nil
}

func (c *historyCache) invalidate() {
	c.mu.Lock()
	c.records = nil
	c.generation++
	c.mu.Unlock()
	c.group.Forget(historyKey)
}
