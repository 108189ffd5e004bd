package response_models

import "devmatter/internal/models/db_models"

type AppSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
	URL    string `json:"url"`
}

type FormDetailResponse struct {
	db_models.Form
	App       AppSummary               `json:"app"`
	Versions  []db_models.FormVersion  `json:"versions"`
	Responses []db_models.FormResponse `json:"responses,omitempty"`
}

type CreatedSecretKeyResponse struct {
	ID uint `json:"id"`
	// The plaintext key, returned exactly once at creation.
	Key string `json:"key"`
}

type SecretKeySummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type FormSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

type AppDetailResponse struct {
	db_models.App
	Forms      []FormSummary      `json:"forms"`
	SecretKeys []SecretKeySummary `json:"secretKeys"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
