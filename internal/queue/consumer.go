package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Consumer listens to the greeting.issued queue and appends one line per
// event to LogPath.
type Consumer struct {
	URL     string
	LogPath string // defaults to logs/greeting.log
}

// Run connects to RabbitMQ, declares the queue (durable) and consumes until
// ctx is cancelled.  Dial and channel failures are retried with a backoff
// capped at 30s.  Malformed messages are rejected without requeue so they
// cannot loop.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			log.Warn().Err(err).Dur("retry_in", backoff).Msg("greeting-consumer: dial failed")
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Msg("greeting-consumer: consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Warn().Err(err).Msg("greeting-consumer: set QoS failed")
	}
	if _, err := ch.QueueDeclare(GreetingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, GreetingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handle(d.Body); err != nil {
			log.Error().Err(err).Msg("greeting-consumer: handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func (c *Consumer) handle(body []byte) error {
	line, err := FormatGreetingLine(body)
	if err != nil {
		return err
	}
	path := c.LogPath
	if path == "" {
		path = filepath.Join("logs", "greeting.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatGreetingLine decodes a GreetingIssuedEvent and renders it as a
// single newline-terminated log line.
func FormatGreetingLine(body []byte) (string, error) {
	var ev GreetingIssuedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}
	return fmt.Sprintf("[%s] Greeting issued | id=%d | name=%q | message=%q\n",
		ev.IssuedAt, ev.ID, ev.Name, ev.Message), nil
}

const maxBackoff = 30 * time.Second

func nextBackoff(d time.Duration) time.Duration {
	return min(d*2, maxBackoff)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
