package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/repository"
)

// OrganizationRepo is read-only from the lifecycle engine's point of view.
// The organization approval workflow lives outside this service.
type OrganizationRepo struct {
	db db.DB
}

func NewOrganizationRepo(db db.DB) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

func (r *OrganizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Organization, error) {
	var org repository.Organization
	err := r.db.Get(ctx, &org, "SELECT * FROM organizations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepo) GetApproved(ctx context.Context) ([]*repository.Organization, error) {
	var orgs []*repository.Organization
	err := r.db.Select(ctx, &orgs, `
        SELECT * FROM organizations
        WHERE status = $1
        ORDER BY name ASC
    `, repository.OrgApproved)
	return orgs, err
}
