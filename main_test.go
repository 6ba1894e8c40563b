package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/config"
	"catalog/internal/models"
	"catalog/internal/repositories"
)

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.StoreMemory}

	repo, closeStore := openStore(context.Background(), cfg, zerolog.Nop())
	defer closeStore()

	require.IsType(t, &repositories.MemoryProductRepository{}, repo)
	assert.NoError(t, repo.Ping(context.Background()))

	id, err := repo.Insert(context.Background(), &models.Product{Name: "Laptop", Category: "Electronics"})
	require.NoError(t, err)
	product, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)
}
