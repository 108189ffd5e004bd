package db_models

import (
	"gorm.io/datatypes"
)

// FormVersion is an immutable snapshot of a form's field definitions. A new
// version is appended whenever the fields of a form that already has responses
// are edited, so historical responses keep the schema that validated them.
type FormVersion struct {
	BaseModel
	FormID        uint           `gorm:"index;not null" json:"formId"`
	VersionNumber int            `gorm:"not null" json:"versionNumber"`
	Fields        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"fields"`

	Form Form `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
}
