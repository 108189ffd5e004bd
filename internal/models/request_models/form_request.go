package request_models

import "devmatter/pkg/fields"

type CreateFormRequest struct {
	AppID uint `json:"appId" binding:"required"`
}

// UpdateFormRequest patches a form. Pointer fields distinguish "absent" from
// zero values; Fields, when present, goes through the schema edit policy.
type UpdateFormRequest struct {
	Name             *string             `json:"name"`
	Public           *bool               `json:"public"`
	RedirectOnSubmit *bool               `json:"redirectOnSubmit"`
	SuccessURL       *string             `json:"successUrl"`
	FailureURL       *string             `json:"failureUrl"`
	Fields           []fields.FieldInput `json:"fields"`
}

type ArchiveResponseRequest struct {
	Archived bool `json:"archived"`
}
