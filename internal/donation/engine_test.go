package donation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/nanumteam/nanum/internal/db"
	mock_database "github.com/nanumteam/nanum/internal/db/mocks"
	"github.com/nanumteam/nanum/internal/donation"
	mock_donation "github.com/nanumteam/nanum/internal/donation/mocks"
	"github.com/nanumteam/nanum/internal/repository"
)

type engineFixture struct {
	mockDB     *mock_database.MockDB
	mockTx     *mock_database.MockTx
	donations  *mock_donation.MockDonationRepository
	deliveries *mock_donation.MockDeliveryRepository
	orgs       *mock_donation.MockOrganizationGate
	donors     *mock_donation.MockDonorDirectory
	engine     *donation.Engine
}

func newEngineFixture(t *testing.T) *engineFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &engineFixture{
		mockDB:     mock_database.NewMockDB(ctrl),
		mockTx:     mock_database.NewMockTx(ctrl),
		donations:  mock_donation.NewMockDonationRepository(ctrl),
		deliveries: mock_donation.NewMockDeliveryRepository(ctrl),
		orgs:       mock_donation.NewMockOrganizationGate(ctrl),
		donors:     mock_donation.NewMockDonorDirectory(ctrl),
	}
	f.engine = donation.NewEngine(f.mockDB, f.donations, f.deliveries, f.orgs, f.donors, zap.NewNop())
	return f
}

func (f *engineFixture) expectTx() {
	f.mockDB.EXPECT().BeginTx(gomock.Any()).Return(f.mockTx, nil)
	f.mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func validCreateParams() donation.CreateParams {
	return donation.CreateParams{
		DonorID:        uuid.New(),
		MatchMode:      repository.MatchIndirect,
		DeliveryMethod: repository.DeliveryCarrier,
		Item: donation.ItemParams{
			Category:    "clothes",
			Size:        "M",
			Description: "Winter coats",
			Quantity:    3,
		},
	}
}

func TestEngine_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown match mode", func(t *testing.T) {
		f := newEngineFixture(t)
		params := validCreateParams()
		params.MatchMode = "mystery"

		created, err := f.engine.Create(ctx, params)
		assert.ErrorIs(t, err, repository.ErrValidation)
		assert.Nil(t, created)
	})

	t.Run("rejects unknown delivery method", func(t *testing.T) {
		f := newEngineFixture(t)
		params := validCreateParams()
		params.DeliveryMethod = "teleport"

		_, err := f.engine.Create(ctx, params)
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		f := newEngineFixture(t)
		params := validCreateParams()
		params.Item.Quantity = 0

		_, err := f.engine.Create(ctx, params)
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("direct donation requires an organization", func(t *testing.T) {
		f := newEngineFixture(t)
		params := validCreateParams()
		params.MatchMode = repository.MatchDirect
		params.OrganizationID = nil

		_, err := f.engine.Create(ctx, params)
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("direct donation requires an approved organization", func(t *testing.T) {
		f := newEngineFixture(t)
		orgID := uuid.New()
		params := validCreateParams()
		params.MatchMode = repository.MatchDirect
		params.OrganizationID = &orgID

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Status: repository.OrgPending}, nil)

		_, err := f.engine.Create(ctx, params)
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("direct donation keeps the chosen organization", func(t *testing.T) {
		f := newEngineFixture(t)
		orgID := uuid.New()
		params := validCreateParams()
		params.MatchMode = repository.MatchDirect
		params.OrganizationID = &orgID

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Status: repository.OrgApproved}, nil)
		f.expectTx()
		f.donations.EXPECT().CreateTx(gomock.Any(), f.mockTx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation, item *repository.DonationItem) error {
				assert.Equal(t, orgID, *d.OrganizationID)
				assert.Equal(t, repository.DecisionPending, d.AdminDecision)
				assert.Equal(t, repository.LifecyclePending, d.Status)
				assert.Equal(t, d.ID, item.DonationID)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := f.engine.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, params.DonorID, created.DonorID)
	})

	t.Run("indirect donation ignores a preselected organization", func(t *testing.T) {
		f := newEngineFixture(t)
		orgID := uuid.New()
		params := validCreateParams()
		params.OrganizationID = &orgID

		f.expectTx()
		f.donations.EXPECT().CreateTx(gomock.Any(), f.mockTx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation, _ *repository.DonationItem) error {
				assert.Nil(t, d.OrganizationID)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := f.engine.Create(ctx, params)
		require.NoError(t, err)
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		f := newEngineFixture(t)
		expectedErr := errors.New("database error")

		f.expectTx()
		f.donations.EXPECT().CreateTx(gomock.Any(), f.mockTx, gomock.Any(), gomock.Any()).
			Return(expectedErr)

		created, err := f.engine.Create(ctx, validCreateParams())
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, created)
	})
}

func TestEngine_AdminApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("moves donation into in_progress and notifies donor", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		donorID := uuid.New()
		stored := &repository.Donation{
			ID:        donationID,
			DonorID:   donorID,
			MatchMode: repository.MatchIndirect,
			Status:    repository.LifecyclePending,
		}

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).Return(stored, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.DecisionApproved, d.AdminDecision)
				assert.Equal(t, repository.LifecycleInProgress, d.Status)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		events, err := f.engine.AdminApprove(ctx, donationID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, donorID, events[0].UserID)
		assert.Equal(t, donation.EventDonationApproved, events[0].Kind)
	})

	t.Run("linked organization also gets an event", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()
		orgUserID := uuid.New()
		stored := &repository.Donation{
			ID:             donationID,
			DonorID:        uuid.New(),
			OrganizationID: &orgID,
			MatchMode:      repository.MatchDirect,
			Status:         repository.LifecyclePending,
		}

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).Return(stored, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).Return(nil)
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, UserID: orgUserID, Status: repository.OrgApproved}, nil)

		events, err := f.engine.AdminApprove(ctx, donationID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, orgUserID, events[1].UserID)
	})

	t.Run("unknown donation", func(t *testing.T) {
		f := newEngineFixture(t)
		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, gomock.Any()).
			Return(nil, repository.ErrObjectNotFound)

		events, err := f.engine.AdminApprove(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, events)
	})
}

func TestEngine_AdminReject(t *testing.T) {
	ctx := context.Background()

	t.Run("indirect donation loses its tentative organization", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()
		stored := &repository.Donation{
			ID:             donationID,
			DonorID:        uuid.New(),
			OrganizationID: &orgID,
			MatchMode:      repository.MatchIndirect,
			Status:         repository.LifecycleInProgress,
		}

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).Return(stored, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.DecisionRejected, d.AdminDecision)
				assert.Nil(t, d.OrganizationID)
				require.NotNil(t, d.CancelReason)
				assert.Equal(t, "not needed right now", *d.CancelReason)
				// The lifecycle status itself is untouched by rejection.
				assert.Equal(t, repository.LifecycleInProgress, d.Status)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		events, err := f.engine.AdminReject(ctx, donationID, "not needed right now")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "not needed right now", events[0].Message)
	})

	t.Run("direct donation keeps its organization", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()
		stored := &repository.Donation{
			ID:             donationID,
			DonorID:        uuid.New(),
			OrganizationID: &orgID,
			MatchMode:      repository.MatchDirect,
			Status:         repository.LifecyclePending,
		}

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).Return(stored, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, orgID, *d.OrganizationID)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := f.engine.AdminReject(ctx, donationID, "")
		require.NoError(t, err)
	})
}

func TestEngine_AdminReset(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the decision and restarts the flow", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()
		reason := "duplicate"
		stored := &repository.Donation{
			ID:             donationID,
			DonorID:        uuid.New(),
			OrganizationID: &orgID,
			MatchMode:      repository.MatchIndirect,
			AdminDecision:  repository.DecisionRejected,
			Status:         repository.LifecycleCancelled,
			CancelReason:   &reason,
		}

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).Return(stored, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.DecisionPending, d.AdminDecision)
				assert.Equal(t, repository.LifecyclePending, d.Status)
				assert.Nil(t, d.CancelReason)
				assert.Nil(t, d.OrganizationID)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		err := f.engine.AdminReset(ctx, donationID)
		assert.NoError(t, err)
	})
}

func TestEngine_AdminAssignOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unapproved organization", func(t *testing.T) {
		f := newEngineFixture(t)
		orgID := uuid.New()

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Status: repository.OrgPending}, nil)

		err := f.engine.AdminAssignOrganization(ctx, uuid.New(), orgID, nil, nil)
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("direct donations cannot be reassigned", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Status: repository.OrgApproved}, nil)
		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, MatchMode: repository.MatchDirect}, nil)

		err := f.engine.AdminAssignOrganization(ctx, donationID, orgID, nil, nil)
		assert.ErrorIs(t, err, repository.ErrInvalidState)
	})

	t.Run("assigns and creates a carrier delivery", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		donorID := uuid.New()
		orgID := uuid.New()
		carrier := "CJ"

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Name: "Hope Center", Status: repository.OrgApproved}, nil)
		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{
				ID:             donationID,
				DonorID:        donorID,
				MatchMode:      repository.MatchIndirect,
				DeliveryMethod: repository.DeliveryCarrier,
				Status:         repository.LifecycleInProgress,
			}, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, orgID, *d.OrganizationID)
				assert.Equal(t, repository.LifecycleInProgress, d.Status)
				return nil
			})
		f.deliveries.EXPECT().GetByDonationIDTx(gomock.Any(), f.mockTx, donationID).
			Return(nil, repository.ErrObjectNotFound)
		f.donors.EXPECT().GetContact(gomock.Any(), donorID).
			Return(&repository.Contact{Name: "Kim", Phone: "010-1234-5678", Address: "Seoul"}, nil)
		f.deliveries.EXPECT().CreateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, del *repository.Delivery) error {
				assert.Equal(t, donationID, del.DonationID)
				assert.Equal(t, &carrier, del.Carrier)
				assert.Equal(t, repository.DeliveryPending, del.Status)
				assert.Equal(t, "Kim", del.SenderName)
				assert.Equal(t, "Hope Center", del.ReceiverName)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		err := f.engine.AdminAssignOrganization(ctx, donationID, orgID, &carrier, nil)
		assert.NoError(t, err)
	})
}

func TestEngine_OrgApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("donation must be linked to the approving organization", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&repository.Organization{ID: orgID, Status: repository.OrgApproved}, nil)
		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, MatchMode: repository.MatchIndirect}, nil)

		events, err := f.engine.OrgApprove(ctx, donationID, orgID, nil, nil)
		assert.ErrorIs(t, err, repository.ErrInvalidState)
		assert.Nil(t, events)
	})

	t.Run("completes the donation and refreshes the delivery", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		donorID := uuid.New()
		orgID := uuid.New()
		orgUserID := uuid.New()
		org := &repository.Organization{
			ID:      orgID,
			UserID:  orgUserID,
			Name:    "Hope Center",
			Phone:   "01087654321",
			Address: "Busan",
			Status:  repository.OrgApproved,
		}
		existing := &repository.Delivery{
			ID:         uuid.New(),
			DonationID: donationID,
			Status:     repository.DeliveryPreparing,
		}

		f.orgs.EXPECT().GetByID(gomock.Any(), orgID).Return(org, nil)
		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{
				ID:             donationID,
				DonorID:        donorID,
				OrganizationID: &orgID,
				MatchMode:      repository.MatchIndirect,
				Status:         repository.LifecycleInProgress,
			}, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.LifecycleCompleted, d.Status)
				return nil
			})
		f.deliveries.EXPECT().GetByDonationIDTx(gomock.Any(), f.mockTx, donationID).Return(existing, nil)
		f.deliveries.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, del *repository.Delivery) error {
				assert.Equal(t, "Hope Center", del.ReceiverName)
				assert.Equal(t, "010-8765-4321", del.ReceiverPhone)
				assert.Equal(t, "Busan", del.ReceiverAddr)
				assert.Equal(t, repository.DeliveryPending, del.Status)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		events, err := f.engine.OrgApprove(ctx, donationID, orgID, nil, nil)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, donorID, events[0].UserID)
		assert.Equal(t, orgUserID, events[1].UserID)
	})
}

func TestEngine_OrgReject(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and unlinks the donation", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()
		orgID := uuid.New()

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{
				ID:             donationID,
				DonorID:        uuid.New(),
				OrganizationID: &orgID,
				MatchMode:      repository.MatchIndirect,
				Status:         repository.LifecycleInProgress,
			}, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.LifecycleCancelled, d.Status)
				assert.Nil(t, d.OrganizationID)
				require.NotNil(t, d.CancelReason)
				assert.Equal(t, "rejected by organization", *d.CancelReason)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		events, err := f.engine.OrgReject(ctx, donationID, orgID)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("unlinked organization cannot reject", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID}, nil)

		_, err := f.engine.OrgReject(ctx, donationID, uuid.New())
		assert.ErrorIs(t, err, repository.ErrInvalidState)
	})
}

func TestEngine_DonorCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("completed donations cannot be cancelled", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, Status: repository.LifecycleCompleted}, nil)

		events, err := f.engine.DonorCancel(ctx, donationID, "changed my mind")
		assert.ErrorIs(t, err, repository.ErrInvalidState)
		assert.Nil(t, events)
	})

	t.Run("cancels a pending donation", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()

		f.expectTx()
		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, DonorID: uuid.New(), Status: repository.LifecyclePending}, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.LifecycleCancelled, d.Status)
				require.NotNil(t, d.CancelReason)
				assert.Equal(t, "changed my mind", *d.CancelReason)
				return nil
			})
		f.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		events, err := f.engine.DonorCancel(ctx, donationID, "changed my mind")
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestEngine_ForceCompleteTx(t *testing.T) {
	ctx := context.Background()

	t.Run("completes an in-progress donation", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()

		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, Status: repository.LifecycleInProgress}, nil)
		f.donations.EXPECT().UpdateTx(gomock.Any(), f.mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Donation) error {
				assert.Equal(t, repository.LifecycleCompleted, d.Status)
				return nil
			})

		err := f.engine.ForceCompleteTx(ctx, f.mockTx, donationID)
		assert.NoError(t, err)
	})

	t.Run("already completed is a no-op", func(t *testing.T) {
		f := newEngineFixture(t)
		donationID := uuid.New()

		f.donations.EXPECT().GetByIDTx(gomock.Any(), f.mockTx, donationID).
			Return(&repository.Donation{ID: donationID, Status: repository.LifecycleCompleted}, nil)

		err := f.engine.ForceCompleteTx(ctx, f.mockTx, donationID)
		assert.NoError(t, err)
	})
}

func TestDashedPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mobile", "01012345678", "010-1234-5678"},
		{"already dashed mobile", "010-1234-5678", "010-1234-5678"},
		{"seoul landline", "0212345678", "02-1234-5678"},
		{"regional landline", "0311234567", "031-123-4567"},
		{"nine digit landline", "021234567", "02-123-4567"},
		{"too short left as-is", "12345", "12345"},
		{"not a number left as-is", "no phone", "no phone"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, donation.DashedPhone(tc.input))
		})
	}
}
