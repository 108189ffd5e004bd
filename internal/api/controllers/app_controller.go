package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"devmatter/internal/models/request_models"
	"devmatter/internal/services"
	"devmatter/pkg/middleware"
	"devmatter/pkg/utils"
)

type AppController struct {
	appService services.AppServiceInterface
}

func NewAppController(appService services.AppServiceInterface) *AppController {
	return &AppController{appService: appService}
}

// CreateApp godoc
// @Summary Create an app
// @Tags Apps
// @Accept json
// @Produce json
// @Param request body request_models.AppRequest true "App payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps [post]
func (a *AppController) CreateApp(c *gin.Context) {
	var req request_models.AppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	app, err := a.appService.CreateApp(c.Request.Context(), userID, req.Name, req.URL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, app, "App created successfully")
}

// ListApps godoc
// @Summary List the caller's apps
// @Tags Apps
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps [get]
func (a *AppController) ListApps(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	apps, err := a.appService.ListApps(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, apps, "Apps fetched successfully")
}

// GetApp godoc
// @Summary Get an app with its forms and secret keys
// @Tags Apps
// @Produce json
// @Param id path int true "App ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps/{id} [get]
func (a *AppController) GetApp(c *gin.Context) {
	appID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid app ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	detail, err := a.appService.GetApp(c.Request.Context(), userID, appID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "App fetched successfully")
}

// UpdateApp godoc
// @Summary Update an app
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App ID"
// @Param request body request_models.AppRequest true "App payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps/{id} [put]
func (a *AppController) UpdateApp(c *gin.Context) {
	appID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid app ID")
		return
	}

	var req request_models.AppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := a.appService.UpdateApp(c.Request.Context(), userID, appID, req.Name, req.URL); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "App updated successfully")
}

// DeleteApp godoc
// @Summary Delete an app
// @Tags Apps
// @Produce json
// @Param id path int true "App ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /apps/{id} [delete]
func (a *AppController) DeleteApp(c *gin.Context) {
	appID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid app ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := a.appService.DeleteApp(c.Request.Context(), userID, appID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "App was deleted successfully")
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
