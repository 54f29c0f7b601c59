package rabbitmq

import (
	"context"
	"fmt"
	"movie_discovery/configs"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TasksExchange = "tasks"

	DefaultQueue       = "default"
	NotificationsQueue = "notifications"
	CacheQueue         = "cache"
	ApiQueue           = "api"
	ReportsQueue       = "reports"
)

var queueNames = []string{
	DefaultQueue,
	NotificationsQueue,
	CacheQueue,
	ApiQueue,
	ReportsQueue,
}

var (
	connection  *amqp.Connection
	publishChan *amqp.Channel
	publishMux  sync.Mutex
)

func ConnectRabbitmq() error {
	conn, err := amqp.Dial(configs.GetConfigs().RabbitmqUrl)
	if err != nil {
		return err
	}
	connection = conn

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	publishChan = ch

	err = ch.ExchangeDeclare(
		TasksExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	for _, name := range queueNames {
		_, err = ch.QueueDeclare(
			name,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			amqp.Table{"x-max-priority": int32(10)},
		)
		if err != nil {
			return err
		}
		err = ch.QueueBind(name, RoutingKey(name), TasksExchange, false, nil)
		if err != nil {
			return err
		}
	}

	fmt.Println("====> [[MovieDiscovery Rabbitmq Client: connected ]]")
	return nil
}

func RoutingKey(queue string) string {
	return "task." + queue
}

func Publish(ctx context.Context, queue string, priority uint8, body []byte) error {
	publishMux.Lock()
	defer publishMux.Unlock()

	return publishChan.PublishWithContext(ctx,
		TasksExchange,
		RoutingKey(queue),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Priority:     priority,
			Body:         body,
		})
}

// Consume opens a dedicated channel for a worker so Qos and acks
// don't interfere with the shared publisher channel.
func Consume(queue string) (<-chan amqp.Delivery, *amqp.Channel, error) {
	ch, err := connection.Channel()
	if err != nil {
		return nil, nil, err
	}

	err = ch.Qos(1, 0, false)
	if err != nil {
		return nil, nil, err
	}

	deliveries, err := ch.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, nil, err
	}

	return deliveries, ch, nil
}

func QueueNames() []string {
	return queueNames
}

func Close() {
	if publishChan != nil {
		_ = publishChan.Close()
	}
	if connection != nil {
		_ = connection.Close()
	}
}
