package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSPublisher olayları NATS konularına JSON olarak yayınlar.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher verilen URL'e bağlanan bir yayıncı oluşturur.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("NATS bağlantısı kurulamadı (%s): %w", url, err)
	}
	return &NATSPublisher{conn: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("olay serileştirilemedi: %w", err)
	}
	return p.conn.Publish(topic, data)
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

var _ Publisher = (*NATSPublisher)(nil)

// NATSSubscriber NATS konularından olay tüketir.
type NATSSubscriber struct {
	conn *nats.Conn
}

// NewNATSSubscriber otomatik yeniden bağlanma ayarlarıyla bağlanır.
func NewNATSSubscriber(url string, opts ...nats.Option) (*NATSSubscriber, error) {
	defaults := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("NATS bağlantısı kurulamadı (%s): %w", url, err)
	}
	return &NATSSubscriber{conn: nc}, nil
}

// Subscribe verilen konu için payload kanalı döner. Cancel aboneliği
// kaldırır, bekleyen mesajları boşaltır ve kanalı kapatır.
func (s *NATSSubscriber) Subscribe(topic string) (<-chan []byte, func(), error) {
	ch := make(chan []byte, subscriptionBuffer)

	var (
		mu     sync.Mutex
		closed bool
		once   sync.Once
	)

	sub, err := s.conn.Subscribe(topic, func(msg *nats.Msg) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- msg.Data:
		default:
			// NATS istemcisini bloklamamak için dolu kanalda mesaj düşürülür.
		}
	})
	if err != nil {
		close(ch)
		return nil, nil, fmt.Errorf("konuya abone olunamadı (%s): %w", topic, err)
	}
	// Flush, abonelik sunucuya kaydolmadan dönmemizi engeller; başka
	// bağlantılardan yayınlanan mesajlar böylece kaçmaz.
	if err := s.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		close(ch)
		return nil, nil, fmt.Errorf("abonelik flush edilemedi: %w", err)
	}

	cancel := func() {
		once.Do(func() {
			_ = sub.Unsubscribe()
			mu.Lock()
			closed = true
			mu.Unlock()
			for {
				select {
				case <-ch:
				default:
					close(ch)
					return
				}
			}
		})
	}

	return ch, cancel, nil
}

func (s *NATSSubscriber) Close() error {
	s.conn.Close()
	return nil
}

var _ Subscriber = (*NATSSubscriber)(nil)
