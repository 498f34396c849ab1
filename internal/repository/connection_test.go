package repository

import (
	"context"
	"errors"
	"testing"

	"constella/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestConnectionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bruno := createTestUser(t, users, "bruno")
	clara := createTestUser(t, users, "clara")

	t.Run("CreateAndGetByID", func(t *testing.T) {
		conn := &models.Connection{UserID: alice.ID, TargetUserID: bruno.ID, Status: models.ConnectionStatusPending}
		require.NoError(t, repo.Create(ctx, conn))
		assert.NotZero(t, conn.ID)

		fetched, err := repo.GetByID(ctx, conn.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, fetched.UserID)
		assert.Equal(t, models.ConnectionStatusPending, fetched.Status)
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("GetBetweenUsersEitherDirection", func(t *testing.T) {
		found, err := repo.GetBetweenUsers(ctx, alice.ID, bruno.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		// Same pair queried in reverse order.
		found, err = repo.GetBetweenUsers(ctx, bruno.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		// No row between alice and clara.
		found, err = repo.GetBetweenUsers(ctx, alice.ID, clara.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("ListForUserBothEndpoints", func(t *testing.T) {
		incoming := &models.Connection{UserID: clara.ID, TargetUserID: alice.ID, Status: models.ConnectionStatusPending}
		require.NoError(t, repo.Create(ctx, incoming))

		conns, err := repo.ListForUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, conns, 2)

		conns, err = repo.ListForUser(ctx, clara.ID)
		require.NoError(t, err)
		assert.Len(t, conns, 1)
	})

	t.Run("UpdateStatusAndListAccepted", func(t *testing.T) {
		conn, err := repo.GetBetweenUsers(ctx, alice.ID, bruno.ID)
		require.NoError(t, err)

		require.NoError(t, repo.UpdateStatus(ctx, conn.ID, models.ConnectionStatusAccepted))

		accepted, err := repo.ListAcceptedForUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, models.ConnectionStatusAccepted, accepted[0].Status)

		// The pending request from clara does not show up.
		accepted, err = repo.ListAcceptedForUser(ctx, clara.ID)
		require.NoError(t, err)
		assert.Empty(t, accepted)
	})

	t.Run("UpdateStatusMissingRowIsNoOp", func(t *testing.T) {
		assert.NoError(t, repo.UpdateStatus(ctx, 9999, models.ConnectionStatusAccepted))
	})

	t.Run("Delete", func(t *testing.T) {
		conn, err := repo.GetBetweenUsers(ctx, clara.ID, alice.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, conn.ID))

		found, err := repo.GetBetweenUsers(ctx, clara.ID, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
