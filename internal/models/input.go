package models

import "time"

// Unit is the purchasing unit of a material input.
type Unit string

const (
	UnitM3    Unit = "m³"
	UnitKg    Unit = "kg"
	UnitBag   Unit = "saco"
	UnitLiter Unit = "l"
	UnitTon   Unit = "ton"
	UnitUn    Unit = "un"
)

// Input is a raw material (cement, aggregate, admixture) consumed by a
// concrete mix recipe. Code is a sequential integer assigned server-side
// as max existing code + 1; it is never taken from the client.
type Input struct {
	ID    string  `gorm:"primaryKey;type:uuid" json:"id"`
	Code  int     `gorm:"not null" json:"code"`
	Name  string  `gorm:"not null" json:"name"`
	Unit  Unit    `gorm:"default:'kg'" json:"unit"`
	Price float64 `json:"price"` // per unit, must be > 0 to save

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (Input) TableName() string {
	return "insumos"
}

func (i Input) RecordID() string { return i.ID }

func (i *Input) SetRecordID(id string) { i.ID = id }
