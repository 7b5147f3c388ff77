package events

import (
	"context"
	"testing"
	"time"
)

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	defer a.Cancel()
	b := hub.Subscribe()
	defer b.Cancel()

	hub.Broadcast(TopicBlessingCreated, []byte(`{"id":1}`))

	for _, sub := range []*Subscription{a, b} {
		select {
		case evt := <-sub.C:
			if evt.Topic != TopicBlessingCreated {
				t.Errorf("konu %q, beklenen %q", evt.Topic, TopicBlessingCreated)
			}
			if string(evt.Data) != `{"id":1}` {
				t.Errorf("veri %q, beklenen %q", evt.Data, `{"id":1}`)
			}
		case <-time.After(time.Second):
			t.Fatal("olay beklenirken zaman aşımı")
		}
	}
}

func TestHub_CancelClosesChannelAndStopsDelivery(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	if got := hub.SubscriberCount(); got != 1 {
		t.Fatalf("abone sayısı %d, beklenen 1", got)
	}

	sub.Cancel()
	// İkinci çağrı panic üretmemeli.
	sub.Cancel()

	if got := hub.SubscriberCount(); got != 0 {
		t.Fatalf("iptal sonrası abone sayısı %d, beklenen 0", got)
	}

	hub.Broadcast(TopicBlessingCreated, []byte(`{}`))

	if _, ok := <-sub.C; ok {
		t.Fatal("iptal sonrası kanal kapalı olmalı")
	}
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	defer sub.Cancel()

	// Tamponu taşır; fazlası sessizce düşer, Broadcast bloklanmaz.
	for i := 0; i < subscriptionBuffer+10; i++ {
		hub.Broadcast(TopicBlessingCreated, []byte(`{}`))
	}

	received := 0
	for {
		select {
		case <-sub.C:
			received++
		default:
			if received != subscriptionBuffer {
				t.Fatalf("alınan olay %d, beklenen %d", received, subscriptionBuffer)
			}
			return
		}
	}
}

func TestHubPublisher_MarshalsAndBroadcasts(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Cancel()

	pub := NewHubPublisher(hub)
	defer pub.Close()

	type payload struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := pub.Publish(context.Background(), TopicBlessingCreated, payload{ID: 7, Name: "Ayşe"}); err != nil {
		t.Fatalf("yayınlama hatası: %v", err)
	}

	select {
	case evt := <-sub.C:
		want := `{"id":7,"name":"Ayşe"}`
		if string(evt.Data) != want {
			t.Errorf("veri %s, beklenen %s", evt.Data, want)
		}
	case <-time.After(time.Second):
		t.Fatal("olay beklenirken zaman aşımı")
	}
}

func TestHubPublisher_RejectsUnmarshalableEvent(t *testing.T) {
	pub := NewHubPublisher(NewHub())
	if err := pub.Publish(context.Background(), TopicBlessingCreated, make(chan int)); err == nil {
		t.Fatal("serileştirilemeyen olay için hata bekleniyordu")
	}
}

type fakeSubscriber struct {
	ch        chan []byte
	cancelled bool
}

func (f *fakeSubscriber) Subscribe(topic string) (<-chan []byte, func(), error) {
	return f.ch, func() {
		if !f.cancelled {
			f.cancelled = true
			close(f.ch)
		}
	}, nil
}

func (f *fakeSubscriber) Close() error { return nil }

func TestForward_BridgesSubscriberToHub(t *testing.T) {
	hub := NewHub()
	out := hub.Subscribe()
	defer out.Cancel()

	src := &fakeSubscriber{ch: make(chan []byte, 4)}
	stop, err := Forward(src, hub, TopicBlessingCreated)
	if err != nil {
		t.Fatalf("köprü kurulamadı: %v", err)
	}

	src.ch <- []byte(`{"id":3}`)

	select {
	case evt := <-out.C:
		if evt.Topic != TopicBlessingCreated {
			t.Errorf("konu %q, beklenen %q", evt.Topic, TopicBlessingCreated)
		}
		if string(evt.Data) != `{"id":3}` {
			t.Errorf("veri %q, beklenen %q", evt.Data, `{"id":3}`)
		}
	case <-time.After(time.Second):
		t.Fatal("köprülenen olay beklenirken zaman aşımı")
	}

	stop()
	if !src.cancelled {
		t.Fatal("stop kaynak aboneliği iptal etmeli")
	}
}
