// Package notify — ambient toast kanalı.
//
// SPA'lerdeki toast bildirimlerinin in-process karşılığı: herhangi bir form
// alanına bağlı olmayan, geçici, kullanıcıya görünür mesajlar. Service
// katmanı başarı/hata durumlarını buraya publish eder; render eden taraf
// (CLI) subscribe olup basar.
//
// Observer pattern: Hub bir "subject"tir, subscriber'lar "observer".
// Service'ler Hub'ın concrete struct'ına değil Publisher interface'ine
// bağımlıdır — testlerde mock Publisher kullanılabilir.
package notify

import "sync"

// Level, toast'ın türü.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast, tek bir ambient bildirim.
type Toast struct {
	Level   Level
	Message string
}

// Publisher, service katmanının toast yayınlamak için kullandığı interface.
type Publisher interface {
	Success(message string)
	Error(message string)
}

// Hub, toast'ları subscriber'lara dağıtan merkezi yapı.
//
// Subscriber'lar buffered channel alır; channel doluysa toast DÜŞÜRÜLÜR
// (bloklamak yerine) — yavaş bir renderer service akışını asla durduramaz.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Toast]bool
}

// NewHub, yeni bir Hub oluşturur.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Toast]bool)}
}

// Subscribe, yeni bir subscriber channel'ı döner.
// İkinci dönüş değeri unsubscribe fonksiyonudur — channel'ı hub'dan
// çıkarır ve kapatır. Subscriber artık dinlemeyecekse ÇAĞRILMALIDIR.
func (h *Hub) Subscribe() (<-chan Toast, func()) {
	ch := make(chan Toast, 16)

	h.mu.Lock()
	h.subs[ch] = true
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.subs[ch] {
			delete(h.subs, ch)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// Success, başarı toast'ı yayınlar.
func (h *Hub) Success(message string) {
	h.publish(Toast{Level: LevelSuccess, Message: message})
}

// Error, hata toast'ı yayınlar.
func (h *Hub) Error(message string) {
	h.publish(Toast{Level: LevelError, Message: message})
}

func (h *Hub) publish(t Toast) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- t:
		default:
			// Buffer dolu — toast düşer, publish bloklamaz.
		}
	}
}
