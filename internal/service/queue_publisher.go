// Package service provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned so callers can ignore failures without
// interrupting the main request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/states-directory/internal/queue"
)

// GreetingPublisher emits GreetingIssuedEvent messages.
type GreetingPublisher interface {
	PublishGreetingIssued(ctx context.Context, ev queue.GreetingIssuedEvent) error
}

// AMQPPublisher dials the broker per publish.  Greeting traffic is low, so a
// short-lived connection keeps the publisher free of reconnect state.
type AMQPPublisher struct {
	URL string
}

// PublishGreetingIssued publishes to the greeting.issued queue through the
// default exchange.  Messages are marked as persistent.
func (p *AMQPPublisher) PublishGreetingIssued(ctx context.Context, ev queue.GreetingIssuedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue.GreetingQueueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.GreetingQueueName, false, false, pub); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
