package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"devmatter/internal/models/request_models"
	"devmatter/internal/services"
	"devmatter/pkg/middleware"
	"devmatter/pkg/utils"
)

type FormController struct {
	formService services.FormServiceInterface
}

func NewFormController(formService services.FormServiceInterface) *FormController {
	return &FormController{formService: formService}
}

// CreateForm godoc
// @Summary Create a form under an app
// @Description Create a form with a default single-field schema
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body request_models.CreateFormRequest true "Form payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /forms [post]
func (f *FormController) CreateForm(c *gin.Context) {
	var req request_models.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	form, err := f.formService.CreateForm(c.Request.Context(), userID, req.AppID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, form, "Form created successfully")
}

// GetForm godoc
// @Summary Get a form with its versions and responses
// @Tags Forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /forms/{id} [get]
func (f *FormController) GetForm(c *gin.Context) {
	formID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	detail, err := f.formService.GetForm(c.Request.Context(), userID, formID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Form fetched successfully")
}

// UpdateForm godoc
// @Summary Update a form
// @Description Patch form settings and optionally replace its field schema
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param request body request_models.UpdateFormRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /forms/{id} [patch]
func (f *FormController) UpdateForm(c *gin.Context) {
	formID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form ID")
		return
	}

	var req request_models.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := f.formService.UpdateForm(c.Request.Context(), userID, formID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Form updated successfully")
}

// ArchiveResponse godoc
// @Summary Archive or unarchive a form response
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path int true "Response ID"
// @Param request body request_models.ArchiveResponseRequest true "Archive payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /responses/{id}/archive [patch]
func (f *FormController) ArchiveResponse(c *gin.Context) {
	responseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid response ID")
		return
	}

	var req request_models.ArchiveResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := f.formService.ArchiveResponse(c.Request.Context(), userID, responseID, req.Archived); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Response updated successfully")
}
