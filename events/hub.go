package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// subscriptionBuffer abone başına kanal tamponu. Tampon dolarsa olay o abone
// için düşürülür; yayıncı asla bloklanmaz.
const subscriptionBuffer = 64

// Envelope hub üzerinden taşınan tek bir olay.
type Envelope struct {
	Topic string
	Data  []byte // JSON-encoded payload
}

// Hub süreç içi fan-out. Her bağlı tebrik defteri görünümü bir Subscription
// alır; Cancel çağrısı teardown ile eşzamanlıdır, sonrasında olay gelmez.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// Subscription hub'a bağlı tek bir tüketici.
type Subscription struct {
	C    <-chan Envelope
	ch   chan Envelope
	hub  *Hub
	once sync.Once
}

// NewHub boş bir hub oluşturur.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe yeni bir abonelik kaydeder.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Envelope, subscriptionBuffer)
	s := &Subscription{C: ch, ch: ch, hub: h}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Cancel aboneliği kaldırır ve kanalı kapatır. Birden çok kez çağrılabilir.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		close(s.ch)
		s.hub.mu.Unlock()
	})
}

// Broadcast olayı tüm abonelere dağıtır. Tamponu dolu aboneler olayı kaçırır.
func (h *Hub) Broadcast(topic string, data []byte) {
	evt := Envelope{Topic: topic, Data: data}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.ch <- evt:
		default:
			// Yavaş tüketici; olayı düşür.
		}
	}
}

// SubscriberCount anlık abone sayısını döner.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// HubPublisher olayları doğrudan süreç içi hub'a yayınlayan Publisher.
// NATS_URL yapılandırılmadığında kullanılır.
type HubPublisher struct {
	hub *Hub
}

// NewHubPublisher verilen hub'a yazan bir Publisher oluşturur.
func NewHubPublisher(hub *Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("olay serileştirilemedi: %w", err)
	}
	p.hub.Broadcast(topic, data)
	return nil
}

func (p *HubPublisher) Close() error {
	return nil
}

var _ Publisher = (*HubPublisher)(nil)

// Forward bir Subscriber'dan gelen olayları hub'a köprüler (NATS modu).
// Dönen stop fonksiyonu aboneliği kaldırır ve köprü goroutine'ini bitirir.
func Forward(sub Subscriber, hub *Hub, topic string) (func(), error) {
	ch, cancel, err := sub.Subscribe(topic)
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for data := range ch {
			hub.Broadcast(topic, data)
		}
	}()
	stop := func() {
		cancel()
		<-done
	}
	return stop, nil
}
