package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"devmatter/internal/models/request_models"
	"devmatter/internal/services"
	"devmatter/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{billingService: billingService}
}

// HandleWebhook godoc
// @Summary Ingest a billing provider webhook
// @Description Apply plan and subscription cycle changes from provider events
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /billing/webhooks [post]
func (b *BillingController) HandleWebhook(c *gin.Context) {
	var event request_models.BillingWebhookRequest
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := b.billingService.HandleEvent(c.Request.Context(), event); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event processed")
}
