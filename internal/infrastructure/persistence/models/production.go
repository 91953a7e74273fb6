package models

import (
	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/production"
)

// ProductionOrderModel is the persistence model for the ProductionOrder aggregate.
type ProductionOrderModel struct {
	AggregateModel
	OrderNumber  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	InProduction bool   `gorm:"not null;default:false"`
	InQuality    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProductionOrderModel) TableName() string {
	return "production_orders"
}

// ToDomain converts the persistence model to a domain ProductionOrder.
func (m *ProductionOrderModel) ToDomain() *production.ProductionOrder {
	return &production.ProductionOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		InProduction:      m.InProduction,
		InQuality:         m.InQuality,
	}
}

// FromDomain populates the persistence model from a domain ProductionOrder.
func (m *ProductionOrderModel) FromDomain(o *production.ProductionOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.InProduction = o.InProduction
	m.InQuality = o.InQuality
}

// ProductionOrderModelFromDomain creates a new persistence model from a domain order.
func ProductionOrderModelFromDomain(o *production.ProductionOrder) *ProductionOrderModel {
	m := &ProductionOrderModel{}
	m.FromDomain(o)
	return m
}

// QualityFormModel is the persistence model for quality control forms.
type QualityFormModel struct {
	BaseModel
	OrderID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Apariencia production.Grade `gorm:"type:varchar(1);not null"`
	Color      production.Grade `gorm:"type:varchar(1);not null"`
	Olor       production.Grade `gorm:"type:varchar(1);not null"`
	Humedad    float64          `gorm:"not null"`
	Proteina   float64          `gorm:"not null"`
	Grasa      float64          `gorm:"not null"`
	Fibra      float64          `gorm:"not null"`
	Cenizas    float64          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (QualityFormModel) TableName() string {
	return "quality_forms"
}

// ToDomain converts the persistence model to a domain QualityForm.
func (m *QualityFormModel) ToDomain() *production.QualityForm {
	return &production.QualityForm{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		UserID:     m.UserID,
		QualityMeasurements: production.QualityMeasurements{
			Apariencia: m.Apariencia,
			Color:      m.Color,
			Olor:       m.Olor,
			Humedad:    m.Humedad,
			Proteina:   m.Proteina,
			Grasa:      m.Grasa,
			Fibra:      m.Fibra,
			Cenizas:    m.Cenizas,
		},
	}
}

// FromDomain populates the persistence model from a domain QualityForm.
func (m *QualityFormModel) FromDomain(f *production.QualityForm) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.OrderID = f.OrderID
	m.UserID = f.UserID
	m.Apariencia = f.Apariencia
	m.Color = f.Color
	m.Olor = f.Olor
	m.Humedad = f.Humedad
	m.Proteina = f.Proteina
	m.Grasa = f.Grasa
	m.Fibra = f.Fibra
	m.Cenizas = f.Cenizas
}

// QualityFormModelFromDomain creates a new persistence model from a domain form.
func QualityFormModelFromDomain(f *production.QualityForm) *QualityFormModel {
	m := &QualityFormModel{}
	m.FromDomain(f)
	return m
}

// ProductionFormModel is the persistence model for production forms.
type ProductionFormModel struct {
	BaseModel
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Dieta        string    `gorm:"type:varchar(20);not null"`
	Molienda     float64   `gorm:"not null"`
	Durabilidad  float64   `gorm:"not null"`
	Dureza       int       `gorm:"not null"`
	Temperatura  int       `gorm:"not null"`
	Peletizadora string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ProductionFormModel) TableName() string {
	return "production_forms"
}

// ToDomain converts the persistence model to a domain ProductionForm.
func (m *ProductionFormModel) ToDomain() *production.ProductionForm {
	return &production.ProductionForm{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		UserID:     m.UserID,
		ProductionMeasurements: production.ProductionMeasurements{
			Dieta:        m.Dieta,
			Molienda:     m.Molienda,
			Durabilidad:  m.Durabilidad,
			Dureza:       m.Dureza,
			Temperatura:  m.Temperatura,
			Peletizadora: m.Peletizadora,
		},
	}
}

// FromDomain populates the persistence model from a domain ProductionForm.
func (m *ProductionFormModel) FromDomain(f *production.ProductionForm) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.OrderID = f.OrderID
	m.UserID = f.UserID
	m.Dieta = f.Dieta
	m.Molienda = f.Molienda
	m.Durabilidad = f.Durabilidad
	m.Dureza = f.Dureza
	m.Temperatura = f.Temperatura
	m.Peletizadora = f.Peletizadora
}

// ProductionFormModelFromDomain creates a new persistence model from a domain form.
func ProductionFormModelFromDomain(f *production.ProductionForm) *ProductionFormModel {
	m := &ProductionFormModel{}
	m.FromDomain(f)
	return m
}
