package request_models

type RegisterDeviceRequest struct {
	Token    string `json:"token" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}
