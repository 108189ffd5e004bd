package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"devmatter/internal/services"
	"devmatter/pkg/utils"
)

// SubmissionController serves the public intake endpoint. Unlike the
// dashboard API it speaks the raw submission wire format: bare
// {"error", "message"} bodies for JSON clients and 303 redirects for
// forms in redirect mode.
type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// Submit godoc
// @Summary Submit a form response
// @Description Accept a submission as JSON, urlencoded or multipart form data
// @Tags Submissions
// @Accept json
// @Produce json
// @Param formId path int true "Form ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /forms/{formId} [post]
func (s *SubmissionController) Submit(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("formId"), 10, 64)
	if err != nil {
		subErr := utils.ErrSubmissionFormNotFound
		c.JSON(subErr.Status, gin.H{"error": subErr.Kind, "message": subErr.Message})
		return
	}

	contentType := c.GetHeader("Content-Type")

	req := services.SubmitRequest{
		FormID:      uint(formID),
		ContentType: contentType,
		AuthHeader:  c.GetHeader("Authorization"),
		Decode:      decodeBody(c, contentType),
	}

	outcome := s.submissionService.Submit(c.Request.Context(), req)

	if outcome.Failure != nil {
		if outcome.RedirectURL != "" {
			c.Redirect(http.StatusSeeOther, outcome.RedirectURL)
			return
		}
		c.JSON(outcome.Failure.Status, gin.H{
			"error":   outcome.Failure.Kind,
			"message": outcome.Failure.Message,
		})
		return
	}

	if outcome.RedirectURL != "" {
		c.Redirect(http.StatusSeeOther, outcome.RedirectURL)
		return
	}

	c.JSON(http.StatusOK, gin.H{"responseId": outcome.ResponseID})
}

// decodeBody defers body parsing until the pipeline reaches the
// content-type gate. JSON bodies keep their native types; urlencoded and
// multipart values arrive as strings, first value per key.
func decodeBody(c *gin.Context, contentType string) func() (map[string]interface{}, error) {
	return func() (map[string]interface{}, error) {
		payload := map[string]interface{}{}

		if isJSONContentType(contentType) {
			decoder := json.NewDecoder(c.Request.Body)
			if err := decoder.Decode(&payload); err != nil {
				return nil, err
			}
			return payload, nil
		}

		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			if err != http.ErrNotMultipart {
				return nil, err
			}
			if err := c.Request.ParseForm(); err != nil {
				return nil, err
			}
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
		if c.Request.MultipartForm != nil {
			for key, values := range c.Request.MultipartForm.Value {
				if len(values) > 0 {
					payload[key] = values[0]
				}
			}
		}
		return payload, nil
	}
}

func isJSONContentType(contentType string) bool {
	return len(contentType) >= len("application/json") &&
		contentType[:len("application/json")] == "application/json"
}
