package rabbitmq

import (
	"time"

	"github.com/streadway/amqp"
)

// PasswordResetEvent — сообщение, уходящее воркеру рассылки.
type PasswordResetEvent struct {
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requested_at"`
}

// Notifier публикует события уведомлений в обменник notifications.
type Notifier struct {
	ch       *amqp.Channel
	exchange string
}

// NewNotifier создает Notifier поверх открытого канала.
func NewNotifier(ch *amqp.Channel, exchange string) *Notifier {
	return &Notifier{ch: ch, exchange: exchange}
}

// PublishPasswordReset отправляет событие сброса пароля в очередь.
func (n *Notifier) PublishPasswordReset(email string) error {
	return PublishMessage(n.ch, n.exchange, "password_reset", PasswordResetEvent{
		Email:       email,
		RequestedAt: time.Now().UTC(),
	})
}
