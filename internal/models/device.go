package models

import "time"

// Device is a field-deployed identifier (tablet, sensor, camera) tied to
// an application location. UA is the "unidade de aplicação" identifier
// printed on the physical unit.
type Device struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	Type       string `gorm:"not null" json:"type"`
	UA         string `gorm:"column:ua;not null" json:"ua"`
	LocationID string `gorm:"type:uuid;not null" json:"locationId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (Device) TableName() string {
	return "dispositivos"
}

func (d Device) RecordID() string { return d.ID }

func (d *Device) SetRecordID(id string) { d.ID = id }
