package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

type DonationRepo struct {
	db db.DB
}

func NewDonationRepo(db db.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

// CreateTx inserts the donation together with its item row. The engine
// always calls this inside one transaction so the pair is atomic.
func (r *DonationRepo) CreateTx(ctx context.Context, tx db.Tx, donation *repository.Donation, item *repository.DonationItem) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO donations (
            id, donor_id, organization_id, match_mode, delivery_method,
            is_anonymous, admin_decision, status, cancel_reason, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, donation.ID, donation.DonorID, donation.OrganizationID, donation.MatchMode, donation.DeliveryMethod,
		donation.IsAnonymous, donation.AdminDecision, donation.Status, donation.CancelReason, donation.CreatedAt, donation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO donation_items (
            id, donation_id, category, size, description, image_urls, quantity
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, item.ID, item.DonationID, item.Category, item.Size, item.Description, item.ImageURLs, item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to insert donation item: %w", err)
	}
	return nil
}

func (r *DonationRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Donation, error) {
	var donation repository.Donation
	err := r.db.Get(ctx, &donation, "SELECT * FROM donations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Donation, error) {
	var donation repository.Donation
	err := tx.Get(ctx, &donation, "SELECT * FROM donations WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepo) UpdateTx(ctx context.Context, tx db.Tx, donation *repository.Donation) error {
	_, err := tx.Exec(ctx, `
        UPDATE donations
        SET
            organization_id = $1,
            admin_decision = $2,
            status = $3,
            cancel_reason = $4,
            updated_at = $5
        WHERE id = $6
    `, donation.OrganizationID, donation.AdminDecision, donation.Status, donation.CancelReason, donation.UpdatedAt, donation.ID)
	return err
}

func (r *DonationRepo) GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM donations
        WHERE donor_id = $1
        ORDER BY created_at DESC
    `, donorID)
	return donations, err
}

func (r *DonationRepo) GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM donations
        WHERE organization_id = $1
        ORDER BY created_at DESC
    `, orgID)
	return donations, err
}

func (r *DonationRepo) GetItemByDonationID(ctx context.Context, donationID uuid.UUID) (*repository.DonationItem, error) {
	var item repository.DonationItem
	err := r.db.Get(ctx, &item, "SELECT * FROM donation_items WHERE donation_id = $1", donationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}
