package repository

import (
	"context"
	"time"

	"homefix-scheduling/internal/infra"
	"homefix-scheduling/internal/infra/db"

	"github.com/google/uuid"
)

const enqueueEventSQL = `
	INSERT INTO outbox_events (event_type, aggregate_id, payload)
	VALUES ($1, $2, $3)
`

// SKIP LOCKED lets multiple publisher instances drain the outbox without
// stepping on each other.
const fetchUnpublishedSQL = `
	SELECT id, event_type, aggregate_id, payload, created_at
	FROM outbox_events
	WHERE published_at IS NULL
	ORDER BY id
	LIMIT $1
	FOR UPDATE SKIP LOCKED
`

const markPublishedSQL = `
	UPDATE outbox_events
	SET published_at = now()
	WHERE id = ANY($1)
`

type OutboxEvent struct {
	ID          int64
	EventType   string
	AggregateID uuid.UUID
	Payload     []byte
	CreatedAt   time.Time
}

type OutboxRepository struct{}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, eventType string, aggregateID uuid.UUID, payload []byte) error {
	_, err := tx.Exec(ctx, enqueueEventSQL, eventType, aggregateID, payload)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) FetchUnpublished(ctx context.Context, tx db.DBTX, limit int) ([]OutboxEvent, error) {
	rows, err := tx.Query(ctx, fetchUnpublishedSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch outbox events", err)
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var ev OutboxEvent
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.AggregateID, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, ev)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox events", rows.Err())
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx db.DBTX, ids []int64) error {
	_, err := tx.Exec(ctx, markPublishedSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}
