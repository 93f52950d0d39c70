package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO notifications (id, user_id, kind, title, message, entity_id, entity_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, n.ID, n.UserID, n.Kind, n.Title, n.Message, n.EntityID, n.EntityType, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*repository.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	var notifications []*repository.Notification
	err := r.db.Select(ctx, &notifications, `
        SELECT * FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `, userID, limit)
	return notifications, err
}
