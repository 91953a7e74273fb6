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

func setupQualityFormTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.QualityFormModel{})
	require.NoError(t, err)

	return db
}

func validQualityMeasurements() production.QualityMeasurements {
	return production.QualityMeasurements{
		Apariencia: production.GradeA,
		Color:      production.GradeB,
		Olor:       production.GradeA,
		Humedad:    12.0,
		Proteina:   20.0,
		Grasa:      3.0,
		Fibra:      4.0,
		Cenizas:    6.0,
	}
}

func TestGormQualityFormRepository_CreateAndFind(t *testing.T) {
	db := setupQualityFormTestDB(t)
	repo := NewGormQualityFormRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	userID := uuid.New()

	form, err := production.NewQualityForm(orderID, userID, validQualityMeasurements())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, form))

	t.Run("finds by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, form.ID)
		require.NoError(t, err)
		assert.Equal(t, orderID, found.OrderID)
		assert.Equal(t, userID, found.UserID)
		assert.Equal(t, production.GradeA, found.Apariencia)
		assert.InDelta(t, 12.0, found.Humedad, 0.0001)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormQualityFormRepository_FindLatestByOrder(t *testing.T) {
	db := setupQualityFormTestDB(t)
	repo := NewGormQualityFormRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	userID := uuid.New()
	base := time.Now().Add(-1 * time.Hour)

	var newest *production.QualityForm
	for i := 0; i < 3; i++ {
		form, err := production.NewQualityForm(orderID, userID, validQualityMeasurements())
		require.NoError(t, err)
		form.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		form.UpdatedAt = form.CreatedAt
		require.NoError(t, repo.Create(ctx, form))
		newest = form
	}

	t.Run("returns the most recently created form", func(t *testing.T) {
		found, err := repo.FindLatestByOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, newest.ID, found.ID)
	})

	t.Run("returns not found when the order has no forms", func(t *testing.T) {
		_, err := repo.FindLatestByOrder(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists all forms newest first", func(t *testing.T) {
		forms, err := repo.ListByOrder(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, forms, 3)
		assert.Equal(t, newest.ID, forms[0].ID)
	})

	t.Run("counts forms per order", func(t *testing.T) {
		count, err := repo.CountByOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = repo.CountByOrder(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestGormQualityFormRepository_Update(t *testing.T) {
	db := setupQualityFormTestDB(t)
	repo := NewGormQualityFormRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	form, err := production.NewQualityForm(orderID, uuid.New(), validQualityMeasurements())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, form))

	revised := validQualityMeasurements()
	revised.Humedad = 13.5
	newAuthor := uuid.New()
	require.NoError(t, form.Overwrite(newAuthor, revised))
	require.NoError(t, repo.Update(ctx, form))

	found, err := repo.FindByID(ctx, form.ID)
	require.NoError(t, err)
	assert.InDelta(t, 13.5, found.Humedad, 0.0001)
	assert.Equal(t, newAuthor, found.UserID)
}
