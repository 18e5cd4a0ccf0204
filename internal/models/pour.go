package models

import "time"

// Weather is the optional site condition tag recorded on a pour.
type Weather string

const (
	WeatherSunny  Weather = "Sunny"
	WeatherCloudy Weather = "Cloudy"
	WeatherRainy  Weather = "Rainy"
)

// PourRecord is one recorded delivery/application of ready-mix concrete.
// Date is a plain ISO calendar date (YYYY-MM-DD); it is compared and
// filtered as a string, never converted through time.Time, so the record
// can never shift a day across timezones. Foreign keys may dangle after
// a registry entity is deleted; read paths substitute placeholders.
type PourRecord struct {
	ID              string  `gorm:"primaryKey;type:uuid" json:"id"`
	Date            string  `gorm:"not null" json:"date"`
	InvoiceNumber   string  `json:"invoiceNumber"` // NF
	LocationID      string  `gorm:"type:uuid;not null" json:"locationId"`
	DeviceID        string  `gorm:"type:uuid" json:"deviceId,omitempty"`
	SupplierID      string  `gorm:"type:uuid;not null" json:"supplierId"`
	ConcreteTypeID  string  `gorm:"type:uuid;not null" json:"concreteTypeId"`
	VolumeDelivered float64 `json:"volumeDelivered"` // m³, > 0
	TruckID         string  `json:"truckId,omitempty"`
	StartTime       string  `json:"startTime,omitempty"`
	EndTime         string  `json:"endTime,omitempty"`
	Weather         Weather `gorm:"default:'Sunny'" json:"weather,omitempty"`
	Notes           string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the backing table name of the original system.
func (PourRecord) TableName() string {
	return "concretagens"
}

func (p PourRecord) RecordID() string { return p.ID }

func (p *PourRecord) SetRecordID(id string) { p.ID = id }
