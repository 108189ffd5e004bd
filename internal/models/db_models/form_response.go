package db_models

import (
	"gorm.io/datatypes"
)

type FormResponse struct {
	BaseModel
	FormVersionID uint           `gorm:"index;not null" json:"formVersionId"`
	RespondentID  *string        `json:"respondentId"`
	Archived      bool           `gorm:"default:false" json:"archived"`
	Response      datatypes.JSON `gorm:"type:jsonb;not null" json:"response"`

	FormVersion FormVersion `gorm:"foreignKey:FormVersionID;constraint:OnDelete:CASCADE" json:"-"`
}
