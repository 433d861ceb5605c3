// Package queue defines the import events exchanged over RabbitMQ and
// the consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// ImportCompletedQueue is the durable queue import events are sent to.
const ImportCompletedQueue = "theatre.import.completed"

// ImportCompletedEvent is published after an import batch commits.
type ImportCompletedEvent struct {
	BatchID     uuid.UUID `json:"batch_id"`
	Kind        string    `json:"kind"`
	Accepted    int       `json:"accepted"`
	Rejected    int       `json:"rejected"`
	Source      string    `json:"source,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}
