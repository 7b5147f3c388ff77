package i18n

import (
	"embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale çeviri paketi yüklenemediğinde kullanılan dil.
const DefaultLocale = "id"

// Bundle tek bir dilin çeviri mesajlarını taşır.
type Bundle struct {
	Locale   string
	messages map[string]any
}

// Load istenen dilin paketini yükler. Bilinmeyen dil ya da bozuk paket
// varsayılan pakete düşer; render asla bloklanmaz.
func Load(locale string) *Bundle {
	if b, err := load(locale); err == nil {
		return b
	}
	b, err := load(DefaultLocale)
	if err != nil {
		// Gömülü varsayılan paket her zaman geçerli olmalı.
		return &Bundle{Locale: DefaultLocale, messages: map[string]any{}}
	}
	return b
}

func load(locale string) (*Bundle, error) {
	raw, err := localeFS.ReadFile("locales/" + locale + ".json")
	if err != nil {
		return nil, err
	}
	var messages map[string]any
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, err
	}
	return &Bundle{Locale: locale, messages: messages}, nil
}

// T nokta ayraçlı anahtarı çözer ("blessing.title"). Anahtar bulunamazsa
// anahtarın kendisi döner; eksik çeviri sayfayı bozmaz.
func (b *Bundle) T(key string) string {
	node := any(b.messages)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return key
		}
		node, ok = m[part]
		if !ok {
			return key
		}
	}
	s, ok := node.(string)
	if !ok {
		return key
	}
	return s
}

// Notifier süreç genelinde açık dil değişikliği bildirimi sağlar.
// Görünümler örtük paylaşılan değişken yerine bu kanala abone olur.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan string]struct{}
}

// DefaultNotifier süreç genelindeki varsayılan dil değişikliği kanalı.
var DefaultNotifier = NewNotifier()

// NewNotifier boş bir bildirici oluşturur.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[chan string]struct{})}
}

// Subscribe dil değişikliklerini alan bir kanal ve abonelikten çıkma
// fonksiyonu döner. Çıkış kanalı kapatır; sonrasında bildirim gelmez.
func (n *Notifier) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 4)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			close(ch)
			n.mu.Unlock()
		})
	}
	return ch, cancel
}

// Notify yeni dili tüm abonelere duyurur. Dolu kanallar atlanır.
func (n *Notifier) Notify(locale string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subs {
		select {
		case ch <- locale:
		default:
		}
	}
}
