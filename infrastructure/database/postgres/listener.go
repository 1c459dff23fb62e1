package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	listenerPingInterval = 90 * time.Second
)

// Listener repassa as notificações LISTEN/NOTIFY de um canal. O payload de cada notificação é o nome
// da coleção alterada. Após uma reconexão todas as coleções de resync são emitidas, já que
// notificações podem ter sido perdidas.
type Listener struct {
	listener *pq.Listener
	channel  string
	resync   []string
}

func NewListener(dsn, channel string, resync []string) *Listener {
	logger := logrus.WithField("channel", channel)

	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			logger.WithError(err).Warn("Conexão do listener do banco interrompida")
		case pq.ListenerEventReconnected:
			logger.Info("Listener do banco reconectado")
		}
	})

	return &Listener{
		listener: listener,
		channel:  channel,
		resync:   resync,
	}
}

// Start passa a escutar o canal. O canal devolvido é fechado quando ctx termina.
func (l *Listener) Start(ctx context.Context) (<-chan string, error) {
	if err := l.listener.Listen(l.channel); err != nil {
		_ = l.listener.Close()
		return nil, err
	}

	logrus.WithField("channel", l.channel).Info("Escutando alterações no banco")

	out := make(chan string, 64)
	go l.loop(ctx, out)

	return out, nil
}

func (l *Listener) loop(ctx context.Context, out chan<- string) {
	defer func() {
		close(out)
		if err := l.listener.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar listener do banco")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-l.listener.Notify:
			collections := l.resync
			if n != nil {
				collection := strings.TrimSpace(n.Extra)
				if collection == "" {
					continue
				}
				collections = []string{collection}
			}

			for _, collection := range collections {
				select {
				case out <- collection:
				case <-ctx.Done():
					return
				}
			}

		case <-time.After(listenerPingInterval):
			go func() {
				if err := l.listener.Ping(); err != nil {
					logrus.WithError(err).Debug("Ping do listener falhou")
				}
			}()
		}
	}
}
