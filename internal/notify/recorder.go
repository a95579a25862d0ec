package notify

import (
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Recorder накапливает уведомления в памяти; используется в тестах
// вместо настоящего UI-приёмника.
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

// NewRecorder создаёт пустой накопитель уведомлений.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify сохраняет уведомление.
func (r *Recorder) Notify(msg domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, msg)
}

// Notifications возвращает копию накопленных уведомлений.
func (r *Recorder) Notifications() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Notification, len(r.notifications))
	copy(result, r.notifications)
	return result
}

// Last возвращает последнее уведомление, если оно есть.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return domain.Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Reset очищает накопленные уведомления.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
}

var _ domain.Notifier = (*Recorder)(nil)
