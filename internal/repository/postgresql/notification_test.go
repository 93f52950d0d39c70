package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/nanumteam/nanum/internal/db/mocks"
	"github.com/nanumteam/nanum/internal/repository"
	"github.com/nanumteam/nanum/internal/repository/postgresql"
)

func TestNotificationRepo_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewNotificationRepo(mockDB)

		userID := uuid.New()
		expected := []*repository.Notification{{ID: uuid.New(), UserID: userID, Kind: "donation_approved"}}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(userID), gomock.Eq(5)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Notification, _ string, _ ...interface{}) error {
				*dest = expected
				return nil
			})

		notifications, err := repo.GetByUserID(ctx, userID, 5)
		assert.NoError(t, err)
		assert.Equal(t, expected, notifications)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewNotificationRepo(mockDB)

		userID := uuid.New()

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(userID), gomock.Eq(20)).
			Return(nil)

		_, err := repo.GetByUserID(ctx, userID, 0)
		assert.NoError(t, err)
	})
}
