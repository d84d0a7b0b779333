// Package rabbitmq содержит подключение к RabbitMQ и публикацию сообщений.
//
// Очередь notification.password_reset принимает события сброса пароля;
// само письмо этим сервисом не отправляется, событие забирает внешний воркер.
package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Connect устанавливает соединение с RabbitMQ и открывает канал.
func Connect(address string) (*amqp.Connection, *amqp.Channel, error) {
	const op = "rabbitmq.Connect"
	conn, err := amqp.Dial(address)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return conn, ch, nil
}
