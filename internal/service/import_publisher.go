// Package service publishes import events to RabbitMQ.  Errors are logged
// and returned so callers may ignore them without failing the import.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/theatre-data-processor/internal/queue"
)

// PublishImportCompleted sends event as a persistent message to the
// import queue on the broker at url.
func PublishImportCompleted(ctx context.Context, url string, event q.ImportCompletedEvent) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		q.ImportCompletedQueue, // name
		true,                   // durable
		false,                  // autoDelete
		false,                  // exclusive
		false,                  // noWait
		nil,                    // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BatchID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.ImportCompletedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

// Publisher sends import events.  A nil Publisher publishes nothing.
type Publisher func(ctx context.Context, event q.ImportCompletedEvent) error

// NewPublisher returns a Publisher bound to url, or nil when disabled.
func NewPublisher(enabled bool, url string) Publisher {
	if !enabled {
		return nil
	}
	return func(ctx context.Context, event q.ImportCompletedEvent) error {
		return PublishImportCompleted(ctx, url, event)
	}
}

// NewImportEvent builds the event for one committed import batch.
func NewImportEvent(kind string, accepted, rejected int, source string) q.ImportCompletedEvent {
	return q.ImportCompletedEvent{
		BatchID:     uuid.New(),
		Kind:        kind,
		Accepted:    accepted,
		Rejected:    rejected,
		Source:      source,
		CompletedAt: time.Now().UTC(),
	}
}
