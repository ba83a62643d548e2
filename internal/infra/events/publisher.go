// Package events drains the transactional outbox to Kafka. Booking and
// cancellation commit their events in the same transaction as the ledger
// write; delivery to the broker happens here, after the fact.
package events

import (
	"context"
	"log/slog"
	"time"

	"homefix-scheduling/internal/infra/repository"
	"homefix-scheduling/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
)

type Publisher struct {
	pool      *pgxpool.Pool
	repo      *repository.OutboxRepository
	logger    *slog.Logger
	brokers   []string
	pollEvery time.Duration
	batchSize int
}

func NewPublisher(pool *pgxpool.Pool, repo *repository.OutboxRepository, logger *slog.Logger, cfg config.KafkaConfig) *Publisher {
	pollEvery := cfg.PollEvery
	if pollEvery <= 0 {
		pollEvery = 2 * time.Second
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Publisher{
		pool:      pool,
		repo:      repo,
		logger:    logger,
		brokers:   cfg.Brokers,
		pollEvery: pollEvery,
		batchSize: batchSize,
	}
}

// Run polls until ctx is cancelled. With no brokers configured the
// publisher is inert and events accumulate in the outbox table.
func (p *Publisher) Run(ctx context.Context) {
	if len(p.brokers) == 0 {
		p.logger.Warn("outbox publisher disabled (no kafka brokers configured)")
		return
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(p.brokers...),
		Balancer: &kafka.Hash{},
	}
	defer func() {
		if err := writer.Close(); err != nil {
			p.logger.Warn("failed to close kafka writer", "error", err)
		}
	}()

	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.publishBatch(ctx, writer); err != nil {
				p.logger.Error("outbox publish failed", "error", err)
			}
		}
	}
}

func (p *Publisher) publishBatch(ctx context.Context, writer *kafka.Writer) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	events, err := p.repo.FetchUnpublished(ctx, tx, p.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return tx.Commit(ctx)
	}

	msgs := make([]kafka.Message, 0, len(events))
	ids := make([]int64, 0, len(events))
	for _, ev := range events {
		msgs = append(msgs, kafka.Message{
			Topic: ev.EventType,
			Key:   []byte(ev.AggregateID.String()),
			Value: ev.Payload,
		})
		ids = append(ids, ev.ID)
	}

	if err := writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}

	if err := p.repo.MarkPublished(ctx, tx, ids); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
