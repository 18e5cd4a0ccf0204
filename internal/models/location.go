package models

import "time"

// Location is a physical application site on the job, e.g. "Bloco A - Laje 1".
// Referenced by pours and devices.
type Location struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CostCenter string `json:"costCenter"` // accounting code, e.g. "CC-101"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (Location) TableName() string {
	return "locais"
}

func (l Location) RecordID() string { return l.ID }

func (l *Location) SetRecordID(id string) { l.ID = id }
