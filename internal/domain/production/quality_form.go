package production

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/shared"
)

// Grade is the categorical score for the sensory quality checks
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// IsValid reports whether the grade is one of the known values
func (g Grade) IsValid() bool {
	return g == GradeA || g == GradeB || g == GradeC
}

// Fixed valid ranges for the laboratory measurements, in percent.
// These are schema-level invariants, independent of the submitting role.
const (
	HumedadMin  = 10.0
	HumedadMax  = 14.0
	ProteinaMin = 18.0
	ProteinaMax = 22.0
	GrasaMin    = 2.0
	GrasaMax    = 4.0
	FibraMin    = 3.0
	FibraMax    = 5.0
	CenizasMin  = 5.0
	CenizasMax  = 7.0
)

// QualityMeasurements holds the mutable fields of a quality form
type QualityMeasurements struct {
	Apariencia Grade
	Color      Grade
	Olor       Grade
	Humedad    float64
	Proteina   float64
	Grasa      float64
	Fibra      float64
	Cenizas    float64
}

// Validate checks every field against its fixed domain. Bounds are
// inclusive on both ends.
func (m QualityMeasurements) Validate() error {
	if !m.Apariencia.IsValid() {
		return shared.NewValidationError("apariencia", "must be one of A, B, C")
	}
	if !m.Color.IsValid() {
		return shared.NewValidationError("color", "must be one of A, B, C")
	}
	if !m.Olor.IsValid() {
		return shared.NewValidationError("olor", "must be one of A, B, C")
	}
	if err := checkRange("humedad", m.Humedad, HumedadMin, HumedadMax); err != nil {
		return err
	}
	if err := checkRange("proteina", m.Proteina, ProteinaMin, ProteinaMax); err != nil {
		return err
	}
	if err := checkRange("grasa", m.Grasa, GrasaMin, GrasaMax); err != nil {
		return err
	}
	if err := checkRange("fibra", m.Fibra, FibraMin, FibraMax); err != nil {
		return err
	}
	if err := checkRange("cenizas", m.Cenizas, CenizasMin, CenizasMax); err != nil {
		return err
	}
	return nil
}

func checkRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return shared.NewValidationError(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
	return nil
}

// QualityForm is one quality measurement record for a production order.
// An order may accumulate several forms over time; the newest created_at
// wins as "the latest form".
type QualityForm struct {
	shared.BaseEntity
	OrderID uuid.UUID
	UserID  uuid.UUID
	QualityMeasurements
}

// NewQualityForm creates a validated quality form for the given order and user
func NewQualityForm(orderID, userID uuid.UUID, m QualityMeasurements) (*QualityForm, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &QualityForm{
		BaseEntity:          shared.NewBaseEntity(),
		OrderID:             orderID,
		UserID:              userID,
		QualityMeasurements: m,
	}, nil
}

// Overwrite replaces the measurement fields in place. The form keeps its
// identity and original creation timestamp; only UpdatedAt moves.
func (f *QualityForm) Overwrite(userID uuid.UUID, m QualityMeasurements) error {
	if err := m.Validate(); err != nil {
		return err
	}

	f.QualityMeasurements = m
	f.UserID = userID
	f.UpdatedAt = time.Now()
	return nil
}
