package repositories

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func seedMemory(t *testing.T, repo *MemoryProductRepository, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := repo.Insert(context.Background(), &models.Product{
			Name:     fmt.Sprintf("Product %02d", i),
			Price:    float64(i),
			Category: "General",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestMemoryInsert_AssignsObjectID(t *testing.T) {
	repo := NewMemoryProductRepository()
	product := &models.Product{ID: "client-chosen", Name: "Laptop", Category: "Electronics"}

	id, err := repo.Insert(context.Background(), product)

	require.NoError(t, err)
	assert.Len(t, id, 24)
	_, err = bson.ObjectIDFromHex(id)
	assert.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored.Name)

	_, err = repo.FindByID(context.Background(), "client-chosen")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryFind_Pages(t *testing.T) {
	repo := NewMemoryProductRepository()
	ids := seedMemory(t, repo, 25)
	ctx := context.Background()

	first, err := repo.Find(ctx, 0, 10)
	require.NoError(t, err)
	second, err := repo.Find(ctx, 10, 10)
	require.NoError(t, err)
	last, err := repo.Find(ctx, 20, 10)
	require.NoError(t, err)
	beyond, err := repo.Find(ctx, 30, 10)
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.Len(t, second, 10)
	assert.Len(t, last, 5)
	assert.Empty(t, beyond)
	assert.Equal(t, ids[0], first[0].ID)
	assert.Equal(t, ids[10], second[0].ID)
	assert.Equal(t, ids[24], last[4].ID)
}

func TestMemoryUpdate(t *testing.T) {
	repo := NewMemoryProductRepository()
	ids := seedMemory(t, repo, 1)
	ctx := context.Background()

	res, err := repo.Update(ctx, &models.Product{
		ID:       ids[0],
		Name:     "Renamed",
		Price:    9.5,
		Category: "Other",
		Reviews:  []models.Review{{Name: "dan", Description: "nice", Rating: 4}},
	})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, int64(1), res.MatchedCount)

	stored, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, 9.5, stored.Price)
	assert.Len(t, stored.Reviews, 1)

	res, err = repo.Update(ctx, &models.Product{ID: bson.NewObjectID().Hex(), Name: "Ghost"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Zero(t, res.MatchedCount)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryProductRepository()
	ids := seedMemory(t, repo, 2)
	ctx := context.Background()

	res, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, int64(1), res.MatchedCount)

	_, err = repo.FindByID(ctx, ids[0])
	assert.ErrorIs(t, err, ErrProductNotFound)

	res, err = repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Zero(t, res.MatchedCount)

	remaining, err := repo.Find(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, ids[1], remaining[0].ID)
}
