package db_models

type Form struct {
	BaseModel
	AppID            uint   `gorm:"index;not null" json:"appId"`
	Name             string `gorm:"not null" json:"name"`
	Public           bool   `gorm:"default:false" json:"public"`
	ResponseCount    int    `gorm:"default:0" json:"responseCount"`
	RedirectOnSubmit bool   `gorm:"default:false" json:"redirectOnSubmit"`
	SuccessURL       string `gorm:"default:''" json:"successUrl"`
	FailureURL       string `gorm:"default:''" json:"failureUrl"`

	App      App           `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"-"`
	Versions []FormVersion `json:"-"`
}
