// Package queue carries embedding tasks over RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const attemptHeader = "x-attempt"

type Config struct {
	URL         string
	Exchange    string
	RoutingKey  string
	QueueName   string
	MaxAttempts int
	Prefetch    int
}

// EmbeddingTask asks the worker to (re)build the embeddings of one video.
type EmbeddingTask struct {
	VideoID    int64     `json:"videoId"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// Handler processes one task. A returned error schedules a retry.
type Handler func(ctx context.Context, task EmbeddingTask) error

type RabbitMQ struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	exchange    string
	routingKey  string
	queueName   string
	maxAttempts int
	prefetch    int
	logger      *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Prefetch < 1 {
		cfg.Prefetch = 1
	}

	logger = logger.With("component", "queue")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:        conn,
		channel:     ch,
		exchange:    cfg.Exchange,
		routingKey:  cfg.RoutingKey,
		queueName:   q.Name,
		maxAttempts: cfg.MaxAttempts,
		prefetch:    cfg.Prefetch,
		logger:      logger,
	}, nil
}

// Enqueue publishes an embedding task for videoID.
func (r *RabbitMQ) Enqueue(ctx context.Context, videoID int64) error {
	return r.publish(ctx, EmbeddingTask{VideoID: videoID, EnqueuedAt: time.Now().UTC()}, 1)
}

func (r *RabbitMQ) publish(ctx context.Context, task EmbeddingTask, attempt int) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Headers:      amqp.Table{attemptHeader: int32(attempt)},
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish task: %w", err)
	}

	r.logger.Debug("published embedding task", "video_id", task.VideoID, "attempt", attempt)
	return nil
}

// Consume delivers tasks to handler until ctx is cancelled or the delivery
// channel closes. Failed tasks are republished with an incremented attempt
// header and dropped once the attempts are exhausted.
func (r *RabbitMQ) Consume(ctx context.Context, handler Handler) error {
	if err := r.channel.Qos(r.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := r.channel.Consume(r.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}

	r.logger.Info("consumer started", "queue", r.queueName, "prefetch", r.prefetch)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			r.handle(ctx, d, handler)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	var task EmbeddingTask
	if err := json.Unmarshal(d.Body, &task); err != nil {
		r.logger.Error("dropping malformed task", "error", err)
		_ = d.Nack(false, false)
		return
	}

	attempt := attemptOf(d.Headers)
	logger := r.logger.With("video_id", task.VideoID, "attempt", attempt)

	err := handler(ctx, task)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	if attempt >= r.maxAttempts {
		logger.Error("embedding task failed, giving up", "error", err)
		_ = d.Ack(false)
		return
	}

	logger.Warn("embedding task failed, retrying", "error", err)
	if perr := r.publish(ctx, task, attempt+1); perr != nil {
		logger.Error("failed to republish task", "error", perr)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

func attemptOf(headers amqp.Table) int {
	switch v := headers[attemptHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 1
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
