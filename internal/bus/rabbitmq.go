package bus

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/docshelf/docshelf/internal/common"
)

type rabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitPublisher connects to the broker and declares a durable
// queue for document events.
func NewRabbitPublisher(cfg common.BusConfig, logger *slog.Logger) (Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, common.WrapError(err, "connect to message broker")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, common.WrapError(err, "open broker channel")
	}

	if _, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, common.WrapError(err, "declare event queue")
	}

	return &rabbitPublisher{conn: conn, channel: channel, queue: cfg.Queue, logger: logger}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return common.WrapError(err, "encode event")
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return common.WrapError(err, "publish event")
	}
	p.logger.Debug("bus.event.published", "type", event.Type, "document_id", event.DocumentID)
	return nil
}

func (p *rabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
