package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"devmatter/internal/services"
	"devmatter/pkg/utils"
)

type stubSubmissionService struct {
	lastRequest *services.SubmitRequest
	payload     map[string]interface{}
	decodeErr   error
	outcome     *services.SubmitOutcome
}

func (s *stubSubmissionService) Submit(ctx context.Context, req services.SubmitRequest) *services.SubmitOutcome {
	s.lastRequest = &req
	s.payload, s.decodeErr = req.Decode()
	return s.outcome
}

func newSubmissionRouter(svc services.SubmissionServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/forms/:formId", NewSubmissionController(svc).Submit)
	return r
}

func TestSubmitNonNumericFormIDIsNotFound(t *testing.T) {
	r := newSubmissionRouter(&stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not-found", body["error"])
}

func TestSubmitDecodesJSONBody(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{ResponseID: 42}}
	r := newSubmissionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1",
		strings.NewReader(`{"name":"Ada","age":37}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tr_key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["responseId"])

	require.NotNil(t, svc.lastRequest)
	assert.Equal(t, uint(1), svc.lastRequest.FormID)
	assert.Equal(t, "Bearer tr_key", svc.lastRequest.AuthHeader)
	require.NoError(t, svc.decodeErr)
	assert.Equal(t, "Ada", svc.payload["name"])
	assert.Equal(t, float64(37), svc.payload["age"])
}

func TestSubmitDecodesURLEncodedBody(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{ResponseID: 1}}
	r := newSubmissionRouter(svc)

	form := url.Values{}
	form.Set("name", "Ada Lovelace")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, svc.decodeErr)
	assert.Equal(t, "Ada Lovelace", svc.payload["name"])
}

func TestSubmitDecodesMultipartBody(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{ResponseID: 1}}
	r := newSubmissionRouter(svc)

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Ada"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, svc.decodeErr)
	assert.Equal(t, "Ada", svc.payload["name"])
}

func TestSubmitFailureRendersBareErrorBody(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{
		Failure: utils.ErrLimitReached,
	}}
	r := newSubmissionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "limit-reached", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestSubmitFailureRedirects(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{
		Failure:     utils.ErrLimitReached,
		RedirectURL: "https://example.com/sorry?error=limit-reached",
	}}
	r := newSubmissionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://example.com/sorry?error=limit-reached", w.Header().Get("Location"))
}

func TestSubmitSuccessRedirects(t *testing.T) {
	svc := &stubSubmissionService{outcome: &services.SubmitOutcome{
		ResponseID:  9,
		RedirectURL: "https://example.com/thanks",
	}}
	r := newSubmissionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://example.com/thanks", w.Header().Get("Location"))
}
