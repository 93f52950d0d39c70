package donation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanumteam/nanum/internal/repository"
)

// View is the materialized read model for one donation: the projected
// label plus the pass-through identifiers list and detail screens need.
type View struct {
	ID               uuid.UUID                 `json:"id"`
	DonorID          uuid.UUID                 `json:"donor_id"`
	Label            Label                     `json:"label"`
	Explanation      string                    `json:"explanation"`
	MatchMode        repository.MatchMode      `json:"match_mode"`
	DeliveryMethod   repository.DeliveryMethod `json:"delivery_method"`
	IsAnonymous      bool                      `json:"is_anonymous"`
	OrganizationName string                    `json:"organization_name,omitempty"`
	Item             *ItemView                 `json:"item,omitempty"`
	DeliveryID       *uuid.UUID                `json:"delivery_id,omitempty"`
	Carrier          *string                   `json:"carrier,omitempty"`
	TrackingNumber   *string                   `json:"tracking_number,omitempty"`
}

// ItemView is the donated goods summary embedded in a View.
type ItemView struct {
	Category    string   `json:"category"`
	Size        string   `json:"size,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	Quantity    int      `json:"quantity"`
}

func (e *Engine) GetView(ctx context.Context, donationID uuid.UUID) (*View, error) {
	d, err := e.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	view := e.buildView(ctx, d)
	return &view, nil
}

func (e *Engine) ListDonorViews(ctx context.Context, donorID uuid.UUID) ([]View, error) {
	donations, err := e.donations.GetByDonorID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(donations))
	for _, d := range donations {
		views = append(views, e.buildView(ctx, d))
	}
	return views, nil
}

func (e *Engine) ListOrganizationViews(ctx context.Context, orgID uuid.UUID) ([]View, error) {
	donations, err := e.donations.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(donations))
	for _, d := range donations {
		views = append(views, e.buildView(ctx, d))
	}
	return views, nil
}

func (e *Engine) buildView(ctx context.Context, d *repository.Donation) View {
	var delivery *repository.Delivery
	del, err := e.deliveries.GetByDonationID(ctx, d.ID)
	switch {
	case err == nil:
		delivery = del
	case !errors.Is(err, repository.ErrObjectNotFound):
		e.logger.Warn("Failed to load delivery for view",
			zap.String("donation_id", d.ID.String()), zap.Error(err))
	}

	orgName := ""
	if d.OrganizationID != nil {
		if org, orgErr := e.orgs.GetByID(ctx, *d.OrganizationID); orgErr == nil {
			orgName = org.Name
		} else {
			e.logger.Warn("Failed to load organization for view",
				zap.String("donation_id", d.ID.String()), zap.Error(orgErr))
		}
	}

	var itemView *ItemView
	if item, itemErr := e.donations.GetItemByDonationID(ctx, d.ID); itemErr == nil {
		itemView = &ItemView{
			Category:    item.Category,
			Size:        item.Size,
			Description: item.Description,
			ImageURLs:   item.ImageURLs,
			Quantity:    item.Quantity,
		}
	} else {
		e.logger.Warn("Failed to load item for view",
			zap.String("donation_id", d.ID.String()), zap.Error(itemErr))
	}

	label, explanation := Project(d, delivery, orgName)
	view := View{
		ID:               d.ID,
		DonorID:          d.DonorID,
		Label:            label,
		Explanation:      explanation,
		MatchMode:        d.MatchMode,
		DeliveryMethod:   d.DeliveryMethod,
		IsAnonymous:      d.IsAnonymous,
		OrganizationName: orgName,
		Item:             itemView,
	}
	if delivery != nil {
		view.DeliveryID = &delivery.ID
		view.Carrier = delivery.Carrier
		view.TrackingNumber = delivery.TrackingNumber
	}
	return view
}
