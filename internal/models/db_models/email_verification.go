package db_models

type EmailVerificationRequest struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Email     string `gorm:"not null" json:"email"`
	Code      string `gorm:"not null" json:"-"`
	ExpiresAt int64  `gorm:"not null" json:"expiresAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
