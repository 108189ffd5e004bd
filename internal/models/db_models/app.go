package db_models

type App struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"userId"`
	Name   string `gorm:"not null" json:"name"`
	URL    string `gorm:"not null" json:"url"`

	User       User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Forms      []Form      `json:"-"`
	SecretKeys []SecretKey `json:"-"`
}
