package notify

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// LogNotifier пишет уведомления в журнал. Используется, когда UI-слой
// не подключил собственный приёмник.
type LogNotifier struct {
	logger *log.Entry
}

// NewLogNotifier создаёт журнальный приёмник уведомлений.
func NewLogNotifier(logger *log.Entry) *LogNotifier {
	if logger == nil {
		logger = log.New().WithField("component", "notifier")
	}
	return &LogNotifier{logger: logger}
}

// Notify выводит уведомление с уровнем по его severity.
func (n *LogNotifier) Notify(msg domain.Notification) {
	entry := n.logger.WithFields(log.Fields{
		"title":    msg.Title,
		"severity": string(msg.Severity),
	})
	if msg.Severity == domain.SeverityDestructive {
		entry.Warn(msg.Description)
		return
	}
	entry.Info(msg.Description)
}

var _ domain.Notifier = (*LogNotifier)(nil)
