//go:generate mockgen -source ./engine.go -destination=./mocks/engine.go -package=mock_donation
package donation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

type DonationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, donation *repository.Donation, item *repository.DonationItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Donation, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Donation, error)
	UpdateTx(ctx context.Context, tx db.Tx, donation *repository.Donation) error
	GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*repository.Donation, error)
	GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]*repository.Donation, error)
	GetItemByDonationID(ctx context.Context, donationID uuid.UUID) (*repository.DonationItem, error)
}

type DeliveryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error
	GetByDonationID(ctx context.Context, donationID uuid.UUID) (*repository.Delivery, error)
	GetByDonationIDTx(ctx context.Context, tx db.Tx, donationID uuid.UUID) (*repository.Delivery, error)
	UpdateTx(ctx context.Context, tx db.Tx, delivery *repository.Delivery) error
}

// OrganizationGate is the narrow view of the organization subsystem the
// engine is allowed to see. Organization state is never mutated from here.
type OrganizationGate interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Organization, error)
	GetApproved(ctx context.Context) ([]*repository.Organization, error)
}

// DonorDirectory resolves a donor's registered contact for the sender side
// of a delivery record.
type DonorDirectory interface {
	GetContact(ctx context.Context, userID uuid.UUID) (*repository.Contact, error)
}

// Engine applies lifecycle transitions to donations. Every operation is a
// single read-modify-write transaction over one donation row (and its
// at-most-one delivery row); notifications are returned as events and
// delivered by the caller after commit.
type Engine struct {
	db         db.DB
	donations  DonationRepository
	deliveries DeliveryRepository
	orgs       OrganizationGate
	donors     DonorDirectory
	logger     *zap.Logger
}

func NewEngine(database db.DB, donations DonationRepository, deliveries DeliveryRepository, orgs OrganizationGate, donors DonorDirectory, logger *zap.Logger) *Engine {
	return &Engine{
		db:         database,
		donations:  donations,
		deliveries: deliveries,
		orgs:       orgs,
		donors:     donors,
		logger:     logger,
	}
}

type ItemParams struct {
	Category    string
	Size        string
	Description string
	ImageURLs   []string
	Quantity    int
}

type CreateParams struct {
	DonorID        uuid.UUID
	MatchMode      repository.MatchMode
	DeliveryMethod repository.DeliveryMethod
	IsAnonymous    bool
	OrganizationID *uuid.UUID
	Item           ItemParams
}

func (e *Engine) Create(ctx context.Context, params CreateParams) (*repository.Donation, error) {
	if params.MatchMode != repository.MatchDirect && params.MatchMode != repository.MatchIndirect {
		return nil, fmt.Errorf("%w: unknown match mode %q", repository.ErrValidation, params.MatchMode)
	}
	if params.DeliveryMethod != repository.DeliverySelf && params.DeliveryMethod != repository.DeliveryCarrier {
		return nil, fmt.Errorf("%w: unknown delivery method %q", repository.ErrValidation, params.DeliveryMethod)
	}
	if params.Item.Quantity <= 0 {
		return nil, fmt.Errorf("%w: item quantity must be positive", repository.ErrValidation)
	}

	var orgID *uuid.UUID
	if params.MatchMode == repository.MatchDirect {
		if params.OrganizationID == nil {
			return nil, fmt.Errorf("%w: direct donations require an organization", repository.ErrValidation)
		}
		org, err := e.orgs.GetByID(ctx, *params.OrganizationID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: organization not found", repository.ErrValidation)
			}
			return nil, err
		}
		if org.Status != repository.OrgApproved {
			return nil, fmt.Errorf("%w: organization is not approved", repository.ErrValidation)
		}
		orgID = params.OrganizationID
	}

	now := time.Now().UTC()
	donation := &repository.Donation{
		ID:             uuid.New(),
		DonorID:        params.DonorID,
		OrganizationID: orgID,
		MatchMode:      params.MatchMode,
		DeliveryMethod: params.DeliveryMethod,
		IsAnonymous:    params.IsAnonymous,
		AdminDecision:  repository.DecisionPending,
		Status:         repository.LifecyclePending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	item := &repository.DonationItem{
		ID:          uuid.New(),
		DonationID:  donation.ID,
		Category:    params.Item.Category,
		Size:        params.Item.Size,
		Description: params.Item.Description,
		ImageURLs:   params.Item.ImageURLs,
		Quantity:    params.Item.Quantity,
	}

	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := e.donations.CreateTx(ctx, tx, donation, item); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return donation, nil
}

// AdminApprove marks the administrative decision as approved and moves the
// donation into in_progress. Deliberately permissive about the current
// state: an administrator may re-approve at any point.
func (e *Engine) AdminApprove(ctx context.Context, donationID uuid.UUID) ([]Event, error) {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return nil, err
	}

	d.AdminDecision = repository.DecisionApproved
	d.Status = repository.LifecycleInProgress
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	events := []Event{
		donorEvent(d.DonorID, EventDonationApproved, d.ID, "Donation approved",
			"Your donation has been approved by the administrator."),
	}
	if d.OrganizationID != nil {
		if org, orgErr := e.orgs.GetByID(ctx, *d.OrganizationID); orgErr == nil {
			events = append(events, Event{
				UserID:     org.UserID,
				Kind:       EventDonationMatched,
				Title:      "Donation assigned",
				Message:    "A donation has been assigned to your organization.",
				EntityID:   d.ID,
				EntityType: entityTypeDonation,
			})
		} else {
			e.logger.Warn("Failed to resolve organization for approval event",
				zap.String("donation_id", d.ID.String()), zap.Error(orgErr))
		}
	}
	return events, nil
}

// AdminReject records the rejection and reason. The lifecycle status is
// left untouched; rejection is visible through the projection alone.
// Indirect donations lose their tentative organization link.
func (e *Engine) AdminReject(ctx context.Context, donationID uuid.UUID, reason string) ([]Event, error) {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return nil, err
	}

	d.AdminDecision = repository.DecisionRejected
	d.CancelReason = &reason
	if d.MatchMode == repository.MatchIndirect {
		d.OrganizationID = nil
	}
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	message := "Your donation was rejected."
	if strings.TrimSpace(reason) != "" {
		message = reason
	}
	return []Event{
		donorEvent(d.DonorID, EventDonationRejected, d.ID, "Donation rejected", message),
	}, nil
}

// AdminReset undoes a prior approve or reject and restarts the flow.
func (e *Engine) AdminReset(ctx context.Context, donationID uuid.UUID) error {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return err
	}

	d.Status = repository.LifecyclePending
	d.AdminDecision = repository.DecisionPending
	d.CancelReason = nil
	if d.MatchMode == repository.MatchIndirect {
		d.OrganizationID = nil
	}
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return fmt.Errorf("failed to update donation: %w", err)
	}
	return tx.Commit(ctx)
}

// AdminAssignOrganization links an approved organization to an indirect
// donation. For carrier deliveries it also creates or updates the delivery
// record; lifecycle status and the administrative decision do not change.
func (e *Engine) AdminAssignOrganization(ctx context.Context, donationID, orgID uuid.UUID, carrier, trackingNumber *string) error {
	org, err := e.orgs.GetByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org.Status != repository.OrgApproved {
		return fmt.Errorf("%w: organization is not approved", repository.ErrValidation)
	}

	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return err
	}
	if d.MatchMode != repository.MatchIndirect {
		return fmt.Errorf("%w: direct donations already carry their organization", repository.ErrInvalidState)
	}
	if d.Status == repository.LifecycleShipped || d.Status == repository.LifecycleCompleted {
		return fmt.Errorf("%w: donation is already %s", repository.ErrInvalidState, d.Status)
	}

	d.OrganizationID = &orgID
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return fmt.Errorf("failed to update donation: %w", err)
	}

	if d.DeliveryMethod == repository.DeliveryCarrier {
		delivery, delErr := e.deliveries.GetByDonationIDTx(ctx, tx, d.ID)
		switch {
		case errors.Is(delErr, repository.ErrObjectNotFound):
			if err := e.createDeliveryTx(ctx, tx, d, org, carrier, trackingNumber, false); err != nil {
				return err
			}
		case delErr != nil:
			return delErr
		default:
			if carrier != nil {
				delivery.Carrier = carrier
			}
			if trackingNumber != nil {
				delivery.TrackingNumber = trackingNumber
			}
			delivery.UpdatedAt = time.Now().UTC()
			if err := e.deliveries.UpdateTx(ctx, tx, delivery); err != nil {
				return fmt.Errorf("failed to update delivery: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}

// OrgApprove is the receiving organization accepting the donation. The
// lifecycle completes unconditionally for both match modes; any existing
// delivery is refreshed with the organization's current contact data and
// its status reset to pending.
func (e *Engine) OrgApprove(ctx context.Context, donationID, orgID uuid.UUID, carrier, trackingNumber *string) ([]Event, error) {
	org, err := e.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return nil, err
	}
	if d.OrganizationID == nil || *d.OrganizationID != orgID {
		return nil, fmt.Errorf("%w: donation is not linked to this organization", repository.ErrInvalidState)
	}

	d.Status = repository.LifecycleCompleted
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	delivery, delErr := e.deliveries.GetByDonationIDTx(ctx, tx, d.ID)
	switch {
	case errors.Is(delErr, repository.ErrObjectNotFound):
		if err := e.createDeliveryTx(ctx, tx, d, org, carrier, trackingNumber, true); err != nil {
			return nil, err
		}
	case delErr != nil:
		return nil, delErr
	default:
		delivery.ReceiverName = org.Name
		delivery.ReceiverPhone = DashedPhone(org.Phone)
		delivery.ReceiverAddr = org.Address
		if carrier != nil {
			delivery.Carrier = carrier
		}
		if trackingNumber != nil {
			delivery.TrackingNumber = trackingNumber
		}
		delivery.Status = repository.DeliveryPending
		delivery.UpdatedAt = time.Now().UTC()
		if err := e.deliveries.UpdateTx(ctx, tx, delivery); err != nil {
			return nil, fmt.Errorf("failed to update delivery: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return []Event{
		donorEvent(d.DonorID, EventDonationApproved, d.ID, "Donation completed",
			fmt.Sprintf("%s accepted your donation.", org.Name)),
		{
			UserID:     org.UserID,
			Kind:       EventDonationMatched,
			Title:      "Donation accepted",
			Message:    "You accepted a donation. Please arrange the handover.",
			EntityID:   d.ID,
			EntityType: entityTypeDonation,
		},
	}, nil
}

// OrgReject is the receiving organization declining the donation; the
// donation is cancelled and unlinked so it can be rematched after a reset.
func (e *Engine) OrgReject(ctx context.Context, donationID, orgID uuid.UUID) ([]Event, error) {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return nil, err
	}
	if d.OrganizationID == nil || *d.OrganizationID != orgID {
		return nil, fmt.Errorf("%w: donation is not linked to this organization", repository.ErrInvalidState)
	}

	reason := "rejected by organization"
	d.Status = repository.LifecycleCancelled
	d.CancelReason = &reason
	d.OrganizationID = nil
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return []Event{
		donorEvent(d.DonorID, EventDonationRejected, d.ID, "Donation declined",
			"The organization declined your donation."),
	}, nil
}

// DonorCancel withdraws the donation. Completed donations cannot be
// cancelled; the HTTP layer additionally restricts cancellation to
// donations still projecting as pending_approval or pending_match.
func (e *Engine) DonorCancel(ctx context.Context, donationID uuid.UUID, reason string) ([]Event, error) {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return nil, err
	}
	if d.Status == repository.LifecycleCompleted {
		return nil, fmt.Errorf("%w: completed donations cannot be cancelled", repository.ErrInvalidState)
	}

	d.Status = repository.LifecycleCancelled
	d.CancelReason = &reason
	d.UpdatedAt = time.Now().UTC()
	if err := e.donations.UpdateTx(ctx, tx, d); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return []Event{
		donorEvent(d.DonorID, EventDonationRejected, d.ID, "Donation cancelled",
			"Your donation has been cancelled."),
	}, nil
}

// ForceCompleteTx is the delivery-driven completion hook: when a linked
// delivery reaches delivered, the owning donation is pushed to completed
// inside the delivery manager's transaction.
func (e *Engine) ForceCompleteTx(ctx context.Context, tx db.Tx, donationID uuid.UUID) error {
	d, err := e.donations.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		return err
	}
	if d.Status == repository.LifecycleCompleted {
		return nil
	}
	d.Status = repository.LifecycleCompleted
	d.UpdatedAt = time.Now().UTC()
	return e.donations.UpdateTx(ctx, tx, d)
}

// createDeliveryTx creates the donation's delivery record. With
// fromOrganization the receiver side is filled from the organization's
// registered contact; otherwise the organization name is a placeholder
// until the organization approves.
func (e *Engine) createDeliveryTx(ctx context.Context, tx db.Tx, d *repository.Donation, org *repository.Organization, carrier, trackingNumber *string, fromOrganization bool) error {
	now := time.Now().UTC()
	delivery := &repository.Delivery{
		ID:             uuid.New(),
		DonationID:     d.ID,
		Carrier:        carrier,
		TrackingNumber: trackingNumber,
		Status:         repository.DeliveryPending,
		ReceiverName:   org.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if fromOrganization {
		delivery.ReceiverPhone = DashedPhone(org.Phone)
		delivery.ReceiverAddr = org.Address
	}

	contact, err := e.donors.GetContact(ctx, d.DonorID)
	if err != nil {
		e.logger.Warn("Failed to resolve donor contact for delivery",
			zap.String("donation_id", d.ID.String()), zap.Error(err))
	} else {
		delivery.SenderName = contact.Name
		delivery.SenderPhone = contact.Phone
		delivery.SenderAddress = contact.Address
	}

	if err := e.deliveries.CreateTx(ctx, tx, delivery); err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}
	return nil
}

// DashedPhone renormalizes a Korean phone number to the dashed format
// carriers expect, e.g. 01012345678 -> 010-1234-5678. Anything that does
// not look like a plain digit string is returned unchanged.
func DashedPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		if strings.HasPrefix(digits, "02") {
			return digits[:2] + "-" + digits[2:6] + "-" + digits[6:]
		}
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	case 9:
		return digits[:2] + "-" + digits[2:5] + "-" + digits[5:]
	default:
		return phone
	}
}
