package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/scheduler"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

type fakeJob struct {
	triggered int
	err       error
}

func (f *fakeJob) Start(context.Context) error { return nil }

func (f *fakeJob) TriggerManualSync() error {
	if f.err != nil {
		return f.err
	}
	f.triggered++
	return nil
}

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"running": f.err != nil, "triggered": f.triggered}
}

func TestRunCronJob(t *testing.T) {
	t.Run("Dispara a sincronização", func(t *testing.T) {
		job := &fakeJob{}
		jobs := CronJobs{CronJobTypeBusRanking: job}

		rec := serve(Cron(jobs), managerClaims, http.MethodPost, "/v1/cron/bus-ranking/run", "")
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
		assert.Equal(t, CronJobTypeBusRanking, decodeBody[map[string]any](t, rec)["type"])
	})

	t.Run("Já em execução", func(t *testing.T) {
		jobs := CronJobs{CronJobTypeDailySnapshot: &fakeJob{err: scheduler.ErrJobAlreadyRunning}}

		rec := serve(Cron(jobs), adminClaims, http.MethodPost, "/v1/cron/daily-snapshot/run", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrJobAlreadyRunning, errorCode(t, rec))
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		jobs := CronJobs{CronJobTypeBusRanking: &fakeJob{}, CronJobTypeDailySnapshot: &fakeJob{}}

		rec := serve(Cron(jobs), adminClaims, http.MethodPost, "/v1/cron/inexistente/run", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Details struct {
				Accepted []string `json:"accepted"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []string{CronJobTypeBusRanking, CronJobTypeDailySnapshot}, body.Details.Accepted)
	})

	t.Run("Conductor não dispara", func(t *testing.T) {
		job := &fakeJob{}

		rec := serve(Cron(CronJobs{CronJobTypeBusRanking: job}), driverClaims, http.MethodPost, "/v1/cron/bus-ranking/run", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, job.triggered)
	})
}

func TestGetCronStatus(t *testing.T) {
	jobs := CronJobs{
		CronJobTypeBusRanking:    &fakeJob{triggered: 2},
		CronJobTypeDailySnapshot: &fakeJob{},
	}

	rec := serve(Cron(jobs), adminClaims, http.MethodGet, "/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	status := decodeBody[map[string]map[string]any](t, rec)
	assert.Len(t, status, 2)
	assert.Equal(t, 2.0, status[CronJobTypeBusRanking]["triggered"])
}
