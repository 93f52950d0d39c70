package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

type DeliveryRepo struct {
	db db.DB
}

func NewDeliveryRepo(db db.DB) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

func (r *DeliveryRepo) CreateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO deliveries (
            id, donation_id, carrier, tracking_number, status,
            sender_name, sender_phone, sender_address,
            receiver_name, receiver_phone, receiver_address,
            shipped_at, delivered_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, delivery.ID, delivery.DonationID, delivery.Carrier, delivery.TrackingNumber, delivery.Status,
		delivery.SenderName, delivery.SenderPhone, delivery.SenderAddress,
		delivery.ReceiverName, delivery.ReceiverPhone, delivery.ReceiverAddr,
		delivery.ShippedAt, delivery.DeliveredAt, delivery.CreatedAt, delivery.UpdatedAt)
	return err
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Delivery, error) {
	var delivery repository.Delivery
	err := r.db.Get(ctx, &delivery, "SELECT * FROM deliveries WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Delivery, error) {
	var delivery repository.Delivery
	err := tx.Get(ctx, &delivery, "SELECT * FROM deliveries WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepo) GetByDonationID(ctx context.Context, donationID uuid.UUID) (*repository.Delivery, error) {
	var delivery repository.Delivery
	err := r.db.Get(ctx, &delivery, "SELECT * FROM deliveries WHERE donation_id = $1", donationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepo) GetByDonationIDTx(ctx context.Context, tx db.Tx, donationID uuid.UUID) (*repository.Delivery, error) {
	var delivery repository.Delivery
	err := tx.Get(ctx, &delivery, "SELECT * FROM deliveries WHERE donation_id = $1 FOR UPDATE", donationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepo) UpdateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error {
	_, err := tx.Exec(ctx, `
        UPDATE deliveries
        SET
            carrier = $1,
            tracking_number = $2,
            status = $3,
            receiver_name = $4,
            receiver_phone = $5,
            receiver_address = $6,
            shipped_at = $7,
            delivered_at = $8,
            updated_at = $9
        WHERE id = $10
    `, delivery.Carrier, delivery.TrackingNumber, delivery.Status,
		delivery.ReceiverName, delivery.ReceiverPhone, delivery.ReceiverAddr,
		delivery.ShippedAt, delivery.DeliveredAt, delivery.UpdatedAt, delivery.ID)
	return err
}

func (r *DeliveryRepo) GetByStatus(ctx context.Context, status repository.DeliveryStatus) ([]*repository.Delivery, error) {
	var deliveries []*repository.Delivery
	err := r.db.Select(ctx, &deliveries, `
        SELECT * FROM deliveries
        WHERE status = $1
        ORDER BY created_at DESC
    `, status)
	return deliveries, err
}

// GetByDonorID lists a donor's deliveries, skipping those whose donation
// was cancelled.
func (r *DeliveryRepo) GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*repository.Delivery, error) {
	var deliveries []*repository.Delivery
	err := r.db.Select(ctx, &deliveries, `
        SELECT d.* FROM deliveries d
        JOIN donations dn ON dn.id = d.donation_id
        WHERE dn.donor_id = $1 AND dn.status <> 'cancelled'
        ORDER BY d.created_at DESC
    `, donorID)
	return deliveries, err
}
