package events

import "context"

// Konu sabitleri. Tebrik ekleme olayının payload'ı kaydın kendisidir
// (models.Blessing JSON'u); tüketici id üzerinden tekilleştirme yapabilir.
const (
	TopicBlessingCreated = "wedding.blessing.created"
)

// Publisher yeni kayıt olaylarını gerçek zamanlı taşıma katmanına yayınlar.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Subscriber bir konuya abone olur ve ham payload'ları kanal üzerinden iletir.
type Subscriber interface {
	// Subscribe verilen konu için payload kanalı döner. Dönen cancel
	// fonksiyonu aboneliği kaldırır ve kanalı kapatır; cancel sonrası
	// kanala hiçbir olay teslim edilmez.
	Subscribe(topic string) (<-chan []byte, func(), error)
	Close() error
}
