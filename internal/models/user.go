package models

import "time"

// UserAuth represents a user account. A row is provisioned at sign-up,
// which doubles as the user profile document of the original system.
type UserAuth struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Name      string     `json:"name,omitempty"`
	Role      string     `gorm:"default:'user'" json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for UserAuth.
func (UserAuth) TableName() string {
	return "usuarios"
}

func (u UserAuth) RecordID() string { return u.ID }

func (u *UserAuth) SetRecordID(id string) { u.ID = id }
