package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"devmatter/internal/models/request_models"
	"devmatter/internal/services"
	"devmatter/pkg/middleware"
	"devmatter/pkg/utils"
)

type DeviceController struct {
	deviceService services.DeviceServiceInterface
}

func NewDeviceController(deviceService services.DeviceServiceInterface) *DeviceController {
	return &DeviceController{deviceService: deviceService}
}

// RegisterDevice godoc
// @Summary Register a device for push notifications
// @Description Upsert the FCM token for the caller's device
// @Tags Devices
// @Accept json
// @Produce json
// @Param request body request_models.RegisterDeviceRequest true "Device payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fcm-registration [post]
func (d *DeviceController) RegisterDevice(c *gin.Context) {
	var req request_models.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := d.deviceService.RegisterDevice(c.Request.Context(), userID, req.DeviceID, req.Token, req.Platform); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Device registered successfully")
}
