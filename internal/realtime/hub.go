// Package realtime distribui para os assinantes websocket o conteúdo atualizado de cada coleção
// que muda no banco.
package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/metrics"
)

const defaultSendBuffer = 16

var ErrHubClosed = errors.New("hub de atualizações encerrado")

// Refresher monta o conteúdo de uma coleção alterada
type Refresher interface {
	Invalidate()
	Refresh(ctx context.Context, collection string) (any, error)
}

// Subscriber recebe as mensagens já serializadas. O canal é fechado quando o hub para.
type Subscriber struct {
	ID   string
	send chan []byte
}

func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

type pending struct {
	collection string
	timer      *time.Timer
}

type broadcast struct {
	collection string
	payload    []byte
}

// Hub é dono do conjunto de assinantes; todo o estado é alterado apenas pela goroutine de Run
type Hub struct {
	refresher  Refresher
	debounce   time.Duration
	sendBuffer int

	register   chan *Subscriber
	unregister chan *Subscriber
	fire       chan *pending
	broadcast  chan broadcast
	done       chan struct{}

	subscribers map[*Subscriber]struct{}
	timers      map[string]*pending
	refreshes   sync.WaitGroup
	now         func() time.Time
}

func NewHub(refresher Refresher, debounce time.Duration) *Hub {
	return &Hub{
		refresher:   refresher,
		debounce:    debounce,
		sendBuffer:  defaultSendBuffer,
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		fire:        make(chan *pending),
		broadcast:   make(chan broadcast),
		done:        make(chan struct{}),
		subscribers: make(map[*Subscriber]struct{}),
		timers:      make(map[string]*pending),
		now:         time.Now,
	}
}

// Subscribe registra um novo assinante
func (h *Hub) Subscribe(id string) (*Subscriber, error) {
	sub := &Subscriber{ID: id, send: make(chan []byte, h.sendBuffer)}

	select {
	case h.register <- sub:
		return sub, nil
	case <-h.done:
		return nil, ErrHubClosed
	}
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// Run processa as notificações até o contexto ser cancelado. Ao sair, espera as atualizações em
// andamento e fecha o canal de todos os assinantes.
func (h *Hub) Run(ctx context.Context, notifications <-chan string) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case collection, ok := <-notifications:
			if !ok {
				notifications = nil
				continue
			}
			h.schedule(ctx, collection)

		case p := <-h.fire:
			if h.timers[p.collection] == p {
				delete(h.timers, p.collection)
			}
			h.startRefresh(ctx, p.collection)

		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}
			metrics.LiveSubscribers.Set(float64(len(h.subscribers)))
			logrus.WithField("subscriber_id", sub.ID).Debug("Assinante conectado")

		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.send)
				metrics.LiveSubscribers.Set(float64(len(h.subscribers)))
				logrus.WithField("subscriber_id", sub.ID).Debug("Assinante desconectado")
			}

		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

// schedule adia a atualização da coleção; notificações dentro da janela reiniciam o prazo
func (h *Hub) schedule(ctx context.Context, collection string) {
	if h.debounce <= 0 {
		h.startRefresh(ctx, collection)
		return
	}

	if p, ok := h.timers[collection]; ok {
		p.timer.Stop()
	}

	p := &pending{collection: collection}
	p.timer = time.AfterFunc(h.debounce, func() {
		select {
		case h.fire <- p:
		case <-ctx.Done():
		}
	})
	h.timers[collection] = p
}

func (h *Hub) startRefresh(ctx context.Context, collection string) {
	if collection == domain.CollectionHistory {
		h.refresher.Invalidate()
	}

	h.refreshes.Add(1)
	go func() {
		defer h.refreshes.Done()
		h.refresh(ctx, collection)
	}()
}

func (h *Hub) refresh(ctx context.Context, collection string) {
	logger := logrus.WithField("collection", collection)

	data, err := h.refresher.Refresh(ctx, collection)
	if err != nil {
		if ctx.Err() == nil {
			logger.WithError(err).Warn("Erro ao atualizar coleção para os assinantes")
		}
		return
	}

	payload, err := jsoniter.Marshal(domain.LiveUpdate{
		Collection: collection,
		Data:       data,
		SentAt:     h.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao serializar atualização")
		return
	}

	select {
	case h.broadcast <- broadcast{collection: collection, payload: payload}:
	case <-ctx.Done():
	}
}

// fanOut nunca bloqueia: assinante com fila cheia perde a mensagem
func (h *Hub) fanOut(msg broadcast) {
	metrics.LiveBroadcasts.WithLabelValues(msg.collection).Inc()

	for sub := range h.subscribers {
		select {
		case sub.send <- msg.payload:
		default:
			metrics.LiveDropped.Inc()
			logrus.WithFields(logrus.Fields{
				"subscriber_id": sub.ID,
				"collection":    msg.collection,
			}).Warn("Assinante lento, mensagem descartada")
		}
	}
}

func (h *Hub) shutdown() {
	for _, p := range h.timers {
		p.timer.Stop()
	}
	h.timers = make(map[string]*pending)

	h.refreshes.Wait()
	close(h.done)

	for sub := range h.subscribers {
		close(sub.send)
		delete(h.subscribers, sub)
	}
	metrics.LiveSubscribers.Set(0)

	logrus.Info("Hub de atualizações ao vivo encerrado")
}
