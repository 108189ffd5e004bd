package request_models

type CreateSecretKeyRequest struct {
	Name string `json:"name" binding:"required"`
}
