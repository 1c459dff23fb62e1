package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Banco indisponível no healthcheck")
				status["status"] = "unavailable"
				status["database"] = "down"
				writeJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "up"
		}

		writeJSON(w, http.StatusOK, status)
	})
}
