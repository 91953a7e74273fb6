package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/production"
	"github.com/hermes/backend/internal/domain/shared"
	"github.com/hermes/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductionFormTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProductionFormModel{})
	require.NoError(t, err)

	return db
}

func validProductionMeasurements() production.ProductionMeasurements {
	return production.ProductionMeasurements{
		Dieta:        "Dieta 1",
		Molienda:     2.5,
		Durabilidad:  95.0,
		Dureza:       80,
		Temperatura:  75,
		Peletizadora: "Peletizadora 2",
	}
}

func TestGormProductionFormRepository_CreateAndFind(t *testing.T) {
	db := setupProductionFormTestDB(t)
	repo := NewGormProductionFormRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	userID := uuid.New()

	form, err := production.NewProductionForm(orderID, userID, validProductionMeasurements())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, form))

	t.Run("finds by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, form.ID)
		require.NoError(t, err)
		assert.Equal(t, orderID, found.OrderID)
		assert.Equal(t, "Dieta 1", found.Dieta)
		assert.Equal(t, 80, found.Dureza)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductionFormRepository_FindLatestByOrder(t *testing.T) {
	db := setupProductionFormTestDB(t)
	repo := NewGormProductionFormRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	base := time.Now().Add(-1 * time.Hour)

	var newest *production.ProductionForm
	for i := 0; i < 2; i++ {
		form, err := production.NewProductionForm(orderID, uuid.New(), validProductionMeasurements())
		require.NoError(t, err)
		form.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		form.UpdatedAt = form.CreatedAt
		require.NoError(t, repo.Create(ctx, form))
		newest = form
	}

	found, err := repo.FindLatestByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, found.ID)

	count, err := repo.CountByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = repo.FindLatestByOrder(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductionFormRepository_Update(t *testing.T) {
	db := setupProductionFormTestDB(t)
	repo := NewGormProductionFormRepository(db)
	ctx := context.Background()

	form, err := production.NewProductionForm(uuid.New(), uuid.New(), validProductionMeasurements())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, form))

	revised := validProductionMeasurements()
	revised.Temperatura = 90
	require.NoError(t, form.Overwrite(uuid.New(), revised))
	require.NoError(t, repo.Update(ctx, form))

	found, err := repo.FindByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, found.Temperatura)
}
