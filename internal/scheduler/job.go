// Package scheduler contém os serviços agendados que consolidam o histórico de vendas
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrJobAlreadyRunning = errors.New("sincronização já está em execução")

// Job é o contrato usado pela API para disparar e consultar os agendadores
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync() error
	GetStatus() map[string]any
}

// jobState impede execuções sobrepostas e guarda os horários da última execução
type jobState struct {
	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

// begin marca a execução como iniciada; devolve false se outra já estiver em andamento
func (j *jobState) begin(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}
	j.running = true
	j.lastSyncStartedAt = now
	return true
}

func (j *jobState) finish(now time.Time, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastSyncCompletedAt = now
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}
}

func (j *jobState) status() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	return map[string]any{
		"running":                j.running,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_error":             j.lastError,
	}
}
