package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gift-card-checker-service/internal/models"
)

func seed(t *testing.T, repo *MemoryRepository, cardNumbers ...string) {
	t.Helper()
	for _, card := range cardNumbers {
		err := repo.Create(context.Background(), &models.Submission{
			InputData: card,
			Balance:   100,
		})
		require.NoError(t, err)
	}
}

func TestMemoryCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewMemoryRepository()

	s := &models.Submission{InputData: "ABCD1234EFGH5678", Balance: 42.5}
	require.NoError(t, repo.Create(context.Background(), s))

	assert.EqualValues(t, 1, s.ID)
	assert.False(t, s.DateChecked.IsZero())
}

func TestMemoryListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "AAAA1111AAAA1111", "BBBB2222BBBB2222")

	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "BBBB2222BBBB2222", listed[0].InputData)
	assert.Equal(t, "AAAA1111AAAA1111", listed[1].InputData)
}

func TestMemoryDeleteAll(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "AAAA1111AAAA1111", "BBBB2222BBBB2222")

	deleted, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	// Idempotent on an empty store.
	deleted, err = repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestMemoryExistsByCard(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "ABCD1234EFGH5678")

	exists, err := repo.ExistsByCard(context.Background(), "ABCD1234EFGH5678")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCard(context.Background(), "ZZZZ0000ZZZZ0000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryDeleteByCard(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "ABCD1234EFGH5678", "ABCD1234EFGH5678", "BBBB2222BBBB2222")

	deleted, err := repo.DeleteByCard(context.Background(), "ABCD1234EFGH5678")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "BBBB2222BBBB2222", listed[0].InputData)
}
