package models

import "time"

// Supplier is a ready-mix concrete vendor.
type Supplier struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Contact string `json:"contact"`
	Rating  int    `gorm:"default:5" json:"rating"` // 1-5, reliability

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (Supplier) TableName() string {
	return "fornecedores"
}

func (s Supplier) RecordID() string { return s.ID }

func (s *Supplier) SetRecordID(id string) { s.ID = id }
