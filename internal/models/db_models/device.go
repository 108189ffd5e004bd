package db_models

import (
	"gorm.io/gorm"

	"time"
)

// Device stores an FCM registration for one of the owner's devices. The ID is
// the client-supplied device identifier, so registrations upsert by id.
type Device struct {
	ID        string `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"userId"`
	FcmToken  string `gorm:"not null" json:"fcmToken"`
	Platform  string `gorm:"not null" json:"platform"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	d.CreatedAt = time.Now().Unix()
	return nil
}
