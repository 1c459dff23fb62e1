package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/scheduler"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

const (
	CronJobTypeBusRanking    = "bus-ranking"
	CronJobTypeDailySnapshot = "daily-snapshot"
)

// CronJobs mapeia o tipo usado na URL para o agendador correspondente
type CronJobs map[string]scheduler.Job

// RunCronJob dispara a execução manual em segundo plano
func RunCronJob(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")

		job, ok := jobs[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": jobs.names(),
			})
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrJobAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), map[string]string{"type": cronType})
				return
			}
			logrus.WithError(err).WithField("job", cronType).Error("Erro ao iniciar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		logrus.WithField("job", cronType).Info("Cron job disparada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (j CronJobs) names() []string {
	names := make([]string, 0, len(j))
	for name := range j {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
