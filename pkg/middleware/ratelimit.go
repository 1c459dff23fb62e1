package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"golang.org/x/time/rate"
)

const (
	visitorTTL       = 10 * time.Minute
	visitorSweepSize = 1024
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	items map[string]*visitor
	limit rate.Limit
	burst int
	now   func() time.Time
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if len(v.items) >= visitorSweepSize {
		for key, item := range v.items {
			if now.Sub(item.lastSeen) > visitorTTL {
				delete(v.items, key)
			}
		}
	}

	item, ok := v.items[ip]
	if !ok {
		item = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.items[ip] = item
	}
	item.lastSeen = now

	return item.limiter
}

// RateLimit limita requisições por IP (token bucket). RPS <= 0 desativa o limite.
func RateLimit(cfg config.LoginLimit) func(http.Handler) http.Handler {
	store := &visitors{
		items: make(map[string]*visitor),
		limit: rate.Limit(cfg.RPS),
		burst: max(cfg.Burst, 1),
		now:   time.Now,
	}

	return func(next http.Handler) http.Handler {
		if cfg.RPS <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !store.get(ip).Allow() {
				logrus.WithFields(logrus.Fields{
					"ip":   ip,
					"path": r.URL.Path,
				}).Warn("Limite de requisições excedido")

				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas tentativas, aguarde um momento", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
