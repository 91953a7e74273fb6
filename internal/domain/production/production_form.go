package production

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/shared"
)

// Fixed valid ranges for the pelleting-line measurements
const (
	MoliendaMin    = 0.1 // mm
	MoliendaMax    = 5.0
	DurabilidadMin = 0.0 // percent
	DurabilidadMax = 100.0
	DurezaMin      = 1 // kg
	DurezaMax      = 100
	TemperaturaMin = 20 // celsius
	TemperaturaMax = 100
)

// DietOptions lists the selectable diets for a production run
var DietOptions = []string{"Dieta 1", "Dieta 2", "Dieta 3"}

// PelletizerOptions lists the pelletizer machines on the line
var PelletizerOptions = []string{"Peletizadora 1", "Peletizadora 2", "Peletizadora 3"}

// ProductionMeasurements holds the mutable fields of a production form
type ProductionMeasurements struct {
	Dieta        string
	Molienda     float64
	Durabilidad  float64
	Dureza       int
	Temperatura  int
	Peletizadora string
}

// Validate checks every field against its fixed domain
func (m ProductionMeasurements) Validate() error {
	if !contains(DietOptions, m.Dieta) {
		return shared.NewValidationError("dieta", "must be one of "+optionList(DietOptions))
	}
	if err := checkRange("molienda", m.Molienda, MoliendaMin, MoliendaMax); err != nil {
		return err
	}
	if err := checkRange("durabilidad", m.Durabilidad, DurabilidadMin, DurabilidadMax); err != nil {
		return err
	}
	if m.Dureza < DurezaMin || m.Dureza > DurezaMax {
		return shared.NewValidationError("dureza", fmt.Sprintf("must be between %d and %d", DurezaMin, DurezaMax))
	}
	if m.Temperatura < TemperaturaMin || m.Temperatura > TemperaturaMax {
		return shared.NewValidationError("temperatura", fmt.Sprintf("must be between %d and %d", TemperaturaMin, TemperaturaMax))
	}
	if !contains(PelletizerOptions, m.Peletizadora) {
		return shared.NewValidationError("peletizadora", "must be one of "+optionList(PelletizerOptions))
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func optionList(options []string) string {
	out := ""
	for i, o := range options {
		if i > 0 {
			out += ", "
		}
		out += o
	}
	return out
}

// ProductionForm is one pelleting-line measurement record for an order
type ProductionForm struct {
	shared.BaseEntity
	OrderID uuid.UUID
	UserID  uuid.UUID
	ProductionMeasurements
}

// NewProductionForm creates a validated production form for the given order and user
func NewProductionForm(orderID, userID uuid.UUID, m ProductionMeasurements) (*ProductionForm, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &ProductionForm{
		BaseEntity:             shared.NewBaseEntity(),
		OrderID:                orderID,
		UserID:                 userID,
		ProductionMeasurements: m,
	}, nil
}

// Overwrite replaces the measurement fields in place, keeping identity
// and the original creation timestamp.
func (f *ProductionForm) Overwrite(userID uuid.UUID, m ProductionMeasurements) error {
	if err := m.Validate(); err != nil {
		return err
	}

	f.ProductionMeasurements = m
	f.UserID = userID
	f.UpdatedAt = time.Now()
	return nil
}
