package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ingredient is one entry of a mix recipe: quantity of an input per m³.
type Ingredient struct {
	InputID  string  `json:"inputId"`
	Quantity float64 `json:"quantity"`
}

// ConcreteType is a named mix recipe, e.g. "FCK 30 Bombeável".
type ConcreteType struct {
	ID                     string                          `gorm:"primaryKey;type:uuid" json:"id"`
	Name                   string                          `gorm:"not null" json:"name"`
	Description            string                          `json:"description"`
	CharacteristicStrength float64                         `json:"characteristicStrength"` // MPa
	Ingredients            datatypes.JSONSlice[Ingredient] `json:"ingredients"`            // may be empty

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (ConcreteType) TableName() string {
	return "tipos_concreto"
}

func (t ConcreteType) RecordID() string { return t.ID }

func (t *ConcreteType) SetRecordID(id string) { t.ID = id }
