//go:generate mockgen -source ./manager.go -destination=./mocks/manager.go -package=mock_delivery
package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

type DeliveryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Delivery, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Delivery, error)
	GetByDonationID(ctx context.Context, donationID uuid.UUID) (*repository.Delivery, error)
	GetByDonationIDTx(ctx context.Context, tx db.Tx, donationID uuid.UUID) (*repository.Delivery, error)
	UpdateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error
	GetByStatus(ctx context.Context, status repository.DeliveryStatus) ([]*repository.Delivery, error)
	GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*repository.Delivery, error)
}

// DonationCompleter is the callback into the lifecycle engine used when a
// delivery reaches delivered for the first time.
type DonationCompleter interface {
	ForceCompleteTx(ctx context.Context, tx db.Tx, donationID uuid.UUID) error
}

// Manager owns the one shipment record each donation may have.
type Manager struct {
	db         db.DB
	deliveries DeliveryRepository
	completer  DonationCompleter
	logger     *zap.Logger
}

func NewManager(database db.DB, deliveries DeliveryRepository, completer DonationCompleter, logger *zap.Logger) *Manager {
	return &Manager{
		db:         database,
		deliveries: deliveries,
		completer:  completer,
		logger:     logger,
	}
}

type CreateParams struct {
	DonationID     uuid.UUID
	Carrier        *string
	TrackingNumber *string
	SenderName     string
	SenderPhone    string
	SenderAddress  string
	ReceiverName   string
	ReceiverPhone  string
	ReceiverAddr   string
}

func (m *Manager) Create(ctx context.Context, params CreateParams) (*repository.Delivery, error) {
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = m.deliveries.GetByDonationIDTx(ctx, tx, params.DonationID)
	if err == nil {
		return nil, fmt.Errorf("%w: donation already has a delivery", repository.ErrAlreadyExists)
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	delivery := &repository.Delivery{
		ID:             uuid.New(),
		DonationID:     params.DonationID,
		Carrier:        params.Carrier,
		TrackingNumber: params.TrackingNumber,
		Status:         repository.DeliveryPending,
		SenderName:     params.SenderName,
		SenderPhone:    params.SenderPhone,
		SenderAddress:  params.SenderAddress,
		ReceiverName:   params.ReceiverName,
		ReceiverPhone:  params.ReceiverPhone,
		ReceiverAddr:   params.ReceiverAddr,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := m.deliveries.CreateTx(ctx, tx, delivery); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return delivery, nil
}

// UpdateStatus changes the shipment status. shipped_at and delivered_at
// are stamped only on the first transition into in_transit and delivered
// respectively; the first delivered transition also completes the owning
// donation inside the same transaction.
func (m *Manager) UpdateStatus(ctx context.Context, deliveryID uuid.UUID, newStatus repository.DeliveryStatus) error {
	if !validDeliveryStatus(newStatus) {
		return fmt.Errorf("%w: unknown delivery status %q", repository.ErrValidation, newStatus)
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	delivery, err := m.deliveries.GetByIDTx(ctx, tx, deliveryID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	delivery.Status = newStatus
	if newStatus == repository.DeliveryInTransit && delivery.ShippedAt == nil {
		delivery.ShippedAt = &now
	}
	if newStatus == repository.DeliveryDelivered {
		if delivery.DeliveredAt == nil {
			delivery.DeliveredAt = &now
		}
		if err := m.completer.ForceCompleteTx(ctx, tx, delivery.DonationID); err != nil {
			return fmt.Errorf("failed to complete donation: %w", err)
		}
	}
	delivery.UpdatedAt = now

	if err := m.deliveries.UpdateTx(ctx, tx, delivery); err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	return tx.Commit(ctx)
}

type UpdateFieldsParams struct {
	Carrier        *string
	TrackingNumber *string
	ReceiverName   *string
	ReceiverPhone  *string
	ReceiverAddr   *string
}

// UpdateFields is a partial update of shipment details; status is never
// touched here.
func (m *Manager) UpdateFields(ctx context.Context, deliveryID uuid.UUID, params UpdateFieldsParams) error {
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	delivery, err := m.deliveries.GetByIDTx(ctx, tx, deliveryID)
	if err != nil {
		return err
	}

	if params.Carrier != nil {
		delivery.Carrier = params.Carrier
	}
	if params.TrackingNumber != nil {
		delivery.TrackingNumber = params.TrackingNumber
	}
	if params.ReceiverName != nil {
		delivery.ReceiverName = *params.ReceiverName
	}
	if params.ReceiverPhone != nil {
		delivery.ReceiverPhone = *params.ReceiverPhone
	}
	if params.ReceiverAddr != nil {
		delivery.ReceiverAddr = *params.ReceiverAddr
	}
	delivery.UpdatedAt = time.Now().UTC()

	if err := m.deliveries.UpdateTx(ctx, tx, delivery); err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	return tx.Commit(ctx)
}

func (m *Manager) GetByID(ctx context.Context, deliveryID uuid.UUID) (*repository.Delivery, error) {
	return m.deliveries.GetByID(ctx, deliveryID)
}

func (m *Manager) GetByDonation(ctx context.Context, donationID uuid.UUID) (*repository.Delivery, error) {
	return m.deliveries.GetByDonationID(ctx, donationID)
}

func (m *Manager) ListByStatus(ctx context.Context, status repository.DeliveryStatus) ([]*repository.Delivery, error) {
	if !validDeliveryStatus(status) {
		return nil, fmt.Errorf("%w: unknown delivery status %q", repository.ErrValidation, status)
	}
	return m.deliveries.GetByStatus(ctx, status)
}

// ListByDonor returns the donor's deliveries, excluding those whose
// donation was cancelled.
func (m *Manager) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*repository.Delivery, error) {
	return m.deliveries.GetByDonorID(ctx, donorID)
}

func validDeliveryStatus(s repository.DeliveryStatus) bool {
	switch s {
	case repository.DeliveryPending, repository.DeliveryPreparing,
		repository.DeliveryInTransit, repository.DeliveryDelivered,
		repository.DeliveryCancelled:
		return true
	}
	return false
}
