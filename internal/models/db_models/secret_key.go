package db_models

type SecretKey struct {
	BaseModel
	AppID uint   `gorm:"index;not null" json:"appId"`
	Name  string `gorm:"not null" json:"name"`
	// HMAC-SHA256 of the plaintext key. The plaintext is shown once at creation
	// and never stored.
	Hash string `gorm:"uniqueIndex;not null" json:"-"`

	App App `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"-"`
}
