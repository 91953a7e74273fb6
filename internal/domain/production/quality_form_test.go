package production

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQualityMeasurements() QualityMeasurements {
	return QualityMeasurements{
		Apariencia: GradeA,
		Color:      GradeB,
		Olor:       GradeA,
		Humedad:    12.0,
		Proteina:   20.0,
		Grasa:      3.0,
		Fibra:      4.0,
		Cenizas:    6.0,
	}
}

func TestQualityMeasurements_Validate(t *testing.T) {
	t.Run("accepts values within ranges", func(t *testing.T) {
		assert.NoError(t, validQualityMeasurements().Validate())
	})

	t.Run("accepts inclusive boundaries", func(t *testing.T) {
		m := validQualityMeasurements()
		m.Humedad = 14.0
		assert.NoError(t, m.Validate())

		m.Humedad = 10.0
		assert.NoError(t, m.Validate())
	})

	t.Run("rejects humedad below minimum", func(t *testing.T) {
		m := validQualityMeasurements()
		m.Humedad = 9.9

		err := m.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "humedad")
	})

	t.Run("rejects each field out of range", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*QualityMeasurements)
		}{
			{"apariencia", func(m *QualityMeasurements) { m.Apariencia = "D" }},
			{"color", func(m *QualityMeasurements) { m.Color = "" }},
			{"olor", func(m *QualityMeasurements) { m.Olor = "X" }},
			{"humedad", func(m *QualityMeasurements) { m.Humedad = 14.1 }},
			{"proteina", func(m *QualityMeasurements) { m.Proteina = 17.9 }},
			{"grasa", func(m *QualityMeasurements) { m.Grasa = 4.5 }},
			{"fibra", func(m *QualityMeasurements) { m.Fibra = 2.0 }},
			{"cenizas", func(m *QualityMeasurements) { m.Cenizas = 7.5 }},
		}

		for _, tc := range cases {
			t.Run(tc.field, func(t *testing.T) {
				m := validQualityMeasurements()
				tc.mutate(&m)

				err := m.Validate()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

func TestNewQualityForm(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()

	t.Run("creates form with valid measurements", func(t *testing.T) {
		form, err := NewQualityForm(orderID, userID, validQualityMeasurements())

		require.NoError(t, err)
		assert.Equal(t, orderID, form.OrderID)
		assert.Equal(t, userID, form.UserID)
		assert.NotEqual(t, uuid.Nil, form.ID)
	})

	t.Run("rejects invalid measurements", func(t *testing.T) {
		m := validQualityMeasurements()
		m.Grasa = 10.0

		_, err := NewQualityForm(orderID, userID, m)
		assert.Error(t, err)
	})
}

func TestQualityForm_Overwrite(t *testing.T) {
	orderID := uuid.New()
	form, err := NewQualityForm(orderID, uuid.New(), validQualityMeasurements())
	require.NoError(t, err)

	originalID := form.ID
	originalCreatedAt := form.CreatedAt

	t.Run("replaces fields but keeps identity and creation time", func(t *testing.T) {
		newUser := uuid.New()
		m := validQualityMeasurements()
		m.Humedad = 13.0

		time.Sleep(time.Millisecond)
		err := form.Overwrite(newUser, m)

		require.NoError(t, err)
		assert.Equal(t, originalID, form.ID)
		assert.Equal(t, originalCreatedAt, form.CreatedAt)
		assert.Equal(t, 13.0, form.Humedad)
		assert.Equal(t, newUser, form.UserID)
		assert.True(t, form.UpdatedAt.After(originalCreatedAt))
	})

	t.Run("rejects invalid replacement and leaves form untouched", func(t *testing.T) {
		m := validQualityMeasurements()
		m.Humedad = 9.0

		err := form.Overwrite(uuid.New(), m)
		require.Error(t, err)
		assert.Equal(t, 13.0, form.Humedad)
	})
}
