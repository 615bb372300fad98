package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer interface {
	Start() error
	Close() error
}

// Revalidator drops cached output for a set of routes.
type Revalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

type EventConsumer struct {
	conn        *amqp091.Connection
	channel     *amqp091.Channel
	exchange    string
	queueName   string
	revalidator Revalidator
	shutdown    chan struct{}
	wg          sync.WaitGroup
	enabled     bool
}

type BindingConfig struct {
	Exchange   string
	RoutingKey string
}

// instanceQueueName gives every process its own queue, so each instance
// sees every revalidation.
func instanceQueueName(prefix string) string {
	return prefix + "." + uuid.NewString()
}

// NewEventConsumer declares an exclusive auto-delete queue named after
// queuePrefix on Start.
func NewEventConsumer(rabbitURI, exchange, queuePrefix string, revalidator Revalidator) (*EventConsumer, error) {
	queueName := instanceQueueName(queuePrefix)
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event consumption is disabled")
		return &EventConsumer{
			queueName:   queueName,
			revalidator: revalidator,
			shutdown:    make(chan struct{}),
			enabled:     false,
		}, nil
	}

	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &EventConsumer{
		conn:        conn,
		channel:     channel,
		exchange:    exchange,
		queueName:   queueName,
		revalidator: revalidator,
		shutdown:    make(chan struct{}),
		enabled:     true,
	}, nil
}

func (c *EventConsumer) QueueName() string {
	return c.queueName
}

func (c *EventConsumer) Start() error {
	if !c.enabled {
		log.Println("Event consumption is disabled, not starting consumer")
		return nil
	}

	err := c.channel.ExchangeDeclare(c.exchange, "topic", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", c.exchange, err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		false,       // durable
		true,        // delete when unused
		true,        // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	bindings := []BindingConfig{
		{Exchange: c.exchange, RoutingKey: string(models.EventTypeCacheRevalidate)},
	}
	for _, binding := range bindings {
		if err := c.channel.QueueBind(c.queueName, binding.RoutingKey, binding.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue to exchange %s with key %s: %w",
				binding.Exchange, binding.RoutingKey, err)
		}
		log.Printf("Bound queue %s to exchange %s with routing key %s",
			c.queueName, binding.Exchange, binding.RoutingKey)
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.consume(msgs)
	}()

	log.Println("Event consumer started")
	return nil
}

func (c *EventConsumer) consume(msgs <-chan amqp091.Delivery) {
	for {
		select {
		case <-c.shutdown:
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Println("Event channel closed, consumer stopping")
				return
			}
			if err := c.processMessage(msg.RoutingKey, msg.Body); err != nil {
				log.Printf("Error processing message %s: %v", msg.RoutingKey, err)
				msg.Nack(false, false)
				continue
			}
			msg.Ack(false)
		}
	}
}

func (c *EventConsumer) processMessage(routingKey string, body []byte) error {
	switch models.EventType(routingKey) {
	case models.EventTypeCacheRevalidate:
		var event models.ContentEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("failed to unmarshal revalidate event: %w", err)
		}
		if len(event.Paths) == 0 {
			return fmt.Errorf("revalidate event without paths")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.revalidator.Invalidate(ctx, event.Paths...); err != nil {
			return err
		}
		log.Printf("Revalidated paths: %v", event.Paths)
		return nil
	default:
		log.Printf("Ignoring event with routing key: %s", routingKey)
		return nil
	}
}

func (c *EventConsumer) Close() error {
	if !c.enabled {
		return nil
	}

	close(c.shutdown)
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
		}
	}
	c.wg.Wait()

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}
	return nil
}
