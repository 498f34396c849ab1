package repository

import (
	"context"
	"testing"

	"constella/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users, "mira")

	profile := &models.Profile{
		UserID:      user.ID,
		Username:    "mira",
		DisplayName: "Mira",
		Email:       user.Email,
	}
	require.NoError(t, repo.Upsert(ctx, profile))

	// A second upsert for the same user refreshes the row instead of
	// creating a duplicate.
	require.NoError(t, repo.Upsert(ctx, &models.Profile{
		UserID:      user.ID,
		Username:    "mira",
		DisplayName: "Mira Estrella",
		Email:       user.Email,
		AvatarURL:   "https://example.com/mira.png",
	}))

	var count int64
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	fetched, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mira Estrella", fetched.DisplayName)
	assert.Equal(t, "https://example.com/mira.png", fetched.AvatarURL)
}

func TestProfileRepositoryGetByUserIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	a := createTestUser(t, users, "ana")
	b := createTestUser(t, users, "beto")

	require.NoError(t, repo.Upsert(ctx, &models.Profile{UserID: a.ID, Username: "ana", DisplayName: "Ana", Email: a.Email}))
	require.NoError(t, repo.Upsert(ctx, &models.Profile{UserID: b.ID, Username: "beto", DisplayName: "Beto", Email: b.Email}))

	profiles, err := repo.GetByUserIDs(ctx, []uint{a.ID, b.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	profiles, err = repo.GetByUserIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileRepositorySearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	caller := createTestUser(t, users, "nova")
	match := createTestUser(t, users, "supernova")
	other := createTestUser(t, users, "quasar")

	require.NoError(t, repo.Upsert(ctx, &models.Profile{UserID: caller.ID, Username: "nova", DisplayName: "Nova", Email: caller.Email}))
	require.NoError(t, repo.Upsert(ctx, &models.Profile{UserID: match.ID, Username: "supernova", DisplayName: "Super Nova", Email: match.Email}))
	require.NoError(t, repo.Upsert(ctx, &models.Profile{UserID: other.ID, Username: "quasar", DisplayName: "Quasar", Email: other.Email}))

	t.Run("CaseInsensitiveExcludesCaller", func(t *testing.T) {
		results, err := repo.Search(ctx, "NOVA", caller.ID, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, match.ID, results[0].UserID)
	})

	t.Run("MatchesDisplayName", func(t *testing.T) {
		results, err := repo.Search(ctx, "super n", caller.ID, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, match.ID, results[0].UserID)
	})

	t.Run("MatchesEmail", func(t *testing.T) {
		results, err := repo.Search(ctx, "quasar@example", caller.ID, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, other.ID, results[0].UserID)
	})

	t.Run("RespectsLimit", func(t *testing.T) {
		results, err := repo.Search(ctx, "a", caller.ID, 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}
