package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди уведомлений, используемые сервисом.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notification.password_reset", RoutingKey: "password_reset"},
	}
}

// SetupQueues объявляет обменник уведомлений и привязывает к нему очереди.
func SetupQueues(ch *amqp.Channel, exchange string) error {
	const op = "rabbitmq.SetupQueues"
	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, q := range GetNotificationQueues() {
		if _, err := ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := ch.QueueBind(q.QueueName, q.RoutingKey, exchange, false, nil); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
