package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/nanumteam/nanum/internal/db/mocks"
	"github.com/nanumteam/nanum/internal/repository"
	"github.com/nanumteam/nanum/internal/repository/postgresql"
)

func testDelivery(now time.Time) *repository.Delivery {
	return &repository.Delivery{
		ID:            uuid.New(),
		DonationID:    uuid.New(),
		Status:        repository.DeliveryPending,
		SenderName:    "Kim",
		SenderPhone:   "010-1234-5678",
		SenderAddress: "Seoul",
		ReceiverName:  "Hope Center",
		ReceiverPhone: "010-8765-4321",
		ReceiverAddr:  "Busan",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDeliveryRepo_CreateTx(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		delivery := testDelivery(now)

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(delivery.ID),
			gomock.Eq(delivery.DonationID),
			gomock.Eq(delivery.Carrier),
			gomock.Eq(delivery.TrackingNumber),
			gomock.Eq(delivery.Status),
			gomock.Eq(delivery.SenderName),
			gomock.Eq(delivery.SenderPhone),
			gomock.Eq(delivery.SenderAddress),
			gomock.Eq(delivery.ReceiverName),
			gomock.Eq(delivery.ReceiverPhone),
			gomock.Eq(delivery.ReceiverAddr),
			gomock.Eq(delivery.ShippedAt),
			gomock.Eq(delivery.DeliveredAt),
			gomock.Eq(delivery.CreatedAt),
			gomock.Eq(delivery.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, delivery)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, testDelivery(now))
		assert.Equal(t, expectedErr, err)
	})
}

func TestDeliveryRepo_GetByDonationID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("delivery found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		expected := testDelivery(now)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.DonationID)).
			DoAndReturn(func(_ context.Context, dest *repository.Delivery, _ string, _ uuid.UUID) error {
				*dest = *expected
				return nil
			})

		delivery, err := repo.GetByDonationID(ctx, expected.DonationID)
		assert.NoError(t, err)
		assert.Equal(t, expected, delivery)
	})

	t.Run("delivery not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		delivery, err := repo.GetByDonationID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, delivery)
	})
}

func TestDeliveryRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		carrier := "CJ"
		tracking := "1234567890"
		shippedAt := now.Add(time.Hour)
		delivery := testDelivery(now)
		delivery.Carrier = &carrier
		delivery.TrackingNumber = &tracking
		delivery.Status = repository.DeliveryInTransit
		delivery.ShippedAt = &shippedAt

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(delivery.Carrier),
			gomock.Eq(delivery.TrackingNumber),
			gomock.Eq(delivery.Status),
			gomock.Eq(delivery.ReceiverName),
			gomock.Eq(delivery.ReceiverPhone),
			gomock.Eq(delivery.ReceiverAddr),
			gomock.Eq(delivery.ShippedAt),
			gomock.Eq(delivery.DeliveredAt),
			gomock.Eq(delivery.UpdatedAt),
			gomock.Eq(delivery.ID),
		).Return(nil, nil)

		err := repo.UpdateTx(ctx, mockTx, delivery)
		assert.NoError(t, err)
	})
}

func TestDeliveryRepo_GetByStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns matching deliveries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		expected := []*repository.Delivery{testDelivery(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(repository.DeliveryPending)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Delivery, _ string, _ repository.DeliveryStatus) error {
				*dest = expected
				return nil
			})

		deliveries, err := repo.GetByStatus(ctx, repository.DeliveryPending)
		assert.NoError(t, err)
		assert.Equal(t, expected, deliveries)
	})
}

func TestDeliveryRepo_GetByDonorID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("skips cancelled donations in the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		donorID := uuid.New()
		expected := []*repository.Delivery{testDelivery(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(donorID)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Delivery, query string, _ uuid.UUID) error {
				assert.Contains(t, query, "dn.status <> 'cancelled'")
				*dest = expected
				return nil
			})

		deliveries, err := repo.GetByDonorID(ctx, donorID)
		assert.NoError(t, err)
		assert.Equal(t, expected, deliveries)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		deliveries, err := repo.GetByDonorID(ctx, uuid.New())
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, deliveries)
	})
}
