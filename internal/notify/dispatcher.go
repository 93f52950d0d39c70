//go:generate mockgen -source ./dispatcher.go -destination=./mocks/dispatcher.go -package=mock_notify
package notify

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/donation"
	"github.com/nanumteam/nanum/internal/metrics"
	"github.com/nanumteam/nanum/internal/repository"
)

type NotificationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// Dispatcher turns lifecycle events into persisted notifications plus
// outbox tasks for the Kafka publisher. Delivery is fire-and-forget: a
// failure here is logged and never surfaces to the transition that
// produced the event.
type Dispatcher struct {
	db            db.DB
	notifications NotificationRepository
	outbox        OutboxTaskRepository
	topic         string
	logger        *zap.Logger
}

func NewDispatcher(database db.DB, notifications NotificationRepository, outbox OutboxTaskRepository, topic string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		db:            database,
		notifications: notifications,
		outbox:        outbox,
		topic:         topic,
		logger:        logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, events []donation.Event) {
	for _, event := range events {
		if err := d.dispatchOne(ctx, event); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("dispatch_notification").Inc()
			d.logger.Error("Failed to dispatch notification",
				zap.String("kind", string(event.Kind)),
				zap.String("user_id", event.UserID.String()),
				zap.Error(err))
		}
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, event donation.Event) error {
	entityType := event.EntityType
	notification := &repository.Notification{
		UserID:     event.UserID,
		Kind:       string(event.Kind),
		Title:      event.Title,
		Message:    event.Message,
		EntityID:   &event.EntityID,
		EntityType: &entityType,
	}

	payload, err := json.Marshal(repository.NotificationPayload{
		Timestamp:  time.Now().UTC(),
		UserID:     event.UserID.String(),
		Kind:       string(event.Kind),
		Title:      event.Title,
		Message:    event.Message,
		EntityID:   event.EntityID.String(),
		EntityType: event.EntityType,
	})
	if err != nil {
		return err
	}

	tx, err := d.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := d.notifications.CreateTx(ctx, tx, notification); err != nil {
		return err
	}
	if err := d.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   d.topic,
	}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
