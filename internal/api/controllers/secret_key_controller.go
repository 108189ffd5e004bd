package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"devmatter/internal/models/request_models"
	"devmatter/internal/services"
	"devmatter/pkg/middleware"
	"devmatter/pkg/utils"
)

type SecretKeyController struct {
	secretKeyService services.SecretKeyServiceInterface
}

func NewSecretKeyController(secretKeyService services.SecretKeyServiceInterface) *SecretKeyController {
	return &SecretKeyController{secretKeyService: secretKeyService}
}

// CreateSecretKey godoc
// @Summary Create a secret key for an app
// @Description Mint a new submission key. The plaintext is returned once and never stored.
// @Tags SecretKeys
// @Accept json
// @Produce json
// @Param id path int true "App ID"
// @Param request body request_models.CreateSecretKeyRequest true "Key payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps/{id}/secret-keys [post]
func (s *SecretKeyController) CreateSecretKey(c *gin.Context) {
	appID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid app ID")
		return
	}

	var req request_models.CreateSecretKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	created, err := s.secretKeyService.CreateSecretKey(c.Request.Context(), userID, appID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "Secret key created successfully")
}

// RevokeSecretKey godoc
// @Summary Revoke a secret key
// @Tags SecretKeys
// @Produce json
// @Param id path int true "Secret key ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /secret-keys/{id} [delete]
func (s *SecretKeyController) RevokeSecretKey(c *gin.Context) {
	keyID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid secret key ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := s.secretKeyService.RevokeSecretKey(c.Request.Context(), userID, keyID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Secret key revoked")
}
