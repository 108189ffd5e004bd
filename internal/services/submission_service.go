package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/fields"
	"devmatter/pkg/utils"
)

const (
	DefaultSuccessURL = "https://devmatter.app/forms/success"
	DefaultFailureURL = "https://devmatter.app/forms/failure"
)

// SubmitRequest carries one inbound submission through the pipeline. Body
// decoding is deferred behind Decode so the content-type gate runs at its
// place in the check order, after access and quota.
type SubmitRequest struct {
	FormID      uint
	ContentType string
	AuthHeader  string
	Decode      func() (map[string]interface{}, error)
}

// SubmitOutcome is the terminal result of the pipeline. Failure is nil on
// acceptance. RedirectURL is set (success or failure target) whenever the
// form is in redirect mode; a form-lookup miss never redirects.
type SubmitOutcome struct {
	Failure     *utils.SubmissionError
	RedirectURL string
	ResponseID  uint
}

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, req SubmitRequest) *SubmitOutcome
}

type SubmissionService struct {
	formRepo     repositories.FormRepositoryInterface
	schemaRepo   repositories.SchemaRepositoryInterface
	responseRepo repositories.ResponseRepositoryInterface
	accessSvc    AccessServiceInterface
	quotaSvc     QuotaServiceInterface
	notifySvc    NotificationServiceInterface
}

func NewSubmissionService(
	formRepo repositories.FormRepositoryInterface,
	schemaRepo repositories.SchemaRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	accessSvc AccessServiceInterface,
	quotaSvc QuotaServiceInterface,
	notifySvc NotificationServiceInterface,
) SubmissionServiceInterface {
	return &SubmissionService{
		formRepo:     formRepo,
		schemaRepo:   schemaRepo,
		responseRepo: responseRepo,
		accessSvc:    accessSvc,
		quotaSvc:     quotaSvc,
		notifySvc:    notifySvc,
	}
}

// Submit runs the admission pipeline, terminal on first failure:
// form lookup, access check, quota check, schema load, validation,
// persistence, then side effects (counter, notification, redirect).
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) *SubmitOutcome {
	form, err := s.formRepo.FindByIDWithOwner(ctx, req.FormID)
	if err != nil {
		return &SubmitOutcome{Failure: utils.ErrSubmissionInternal}
	}
	if form == nil {
		return &SubmitOutcome{Failure: utils.ErrSubmissionFormNotFound}
	}

	if subErr := s.accessSvc.Resolve(ctx, form, req.AuthHeader); subErr != nil {
		return s.fail(form, subErr)
	}

	if subErr := s.quotaSvc.Admit(ctx, form.App.UserID, form.App.User.PricingPlan); subErr != nil {
		return s.fail(form, subErr)
	}

	version, err := s.schemaRepo.LatestVersion(ctx, form.ID)
	if err != nil || version == nil {
		return s.fail(form, utils.ErrSubmissionInternal)
	}

	schema, parseErr := fields.Parse(version.Fields)
	if parseErr != nil {
		return s.fail(form, utils.ErrInvalidSchema)
	}

	if !supportedContentType(req.ContentType) {
		return s.fail(form, utils.ErrUnsupportedContentType)
	}

	payload, decodeErr := req.Decode()
	if decodeErr != nil {
		return s.fail(form, utils.ErrInvalidField)
	}

	normalized, validateErr := fields.Validate(payload, schema)
	if validateErr != nil {
		subErr, ok := validateErr.(*utils.SubmissionError)
		if !ok {
			subErr = utils.ErrSubmissionInternal
		}
		return s.fail(form, subErr)
	}

	encoded, err := json.Marshal(normalized)
	if err != nil {
		return s.fail(form, utils.ErrSubmissionInternal)
	}

	response := &db_models.FormResponse{
		FormVersionID: version.ID,
		Response:      encoded,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return s.fail(form, utils.ErrSubmissionInternal)
	}

	if err := s.formRepo.IncrementResponseCount(ctx, form.ID); err != nil {
		// The response row is committed; the denormalized counter catching
		// up late is acceptable, losing the submission is not.
		log.Printf("Error incrementing response count for form %d: %v", form.ID, err)
	}

	s.notifySvc.NotifyNewSubmission(ctx, form, response.ID)

	outcome := &SubmitOutcome{ResponseID: response.ID}
	if form.RedirectOnSubmit {
		target := form.SuccessURL
		if target == "" {
			target = DefaultSuccessURL
		} else {
			target = utils.SubstitutePlaceholders(target, normalized)
		}
		outcome.RedirectURL = target
	}
	return outcome
}

func (s *SubmissionService) fail(form *db_models.Form, subErr *utils.SubmissionError) *SubmitOutcome {
	outcome := &SubmitOutcome{Failure: subErr}
	if form.RedirectOnSubmit {
		target := form.FailureURL
		if target == "" {
			target = DefaultFailureURL
		}
		outcome.RedirectURL = target + "?error=" + subErr.Kind
	}
	return outcome
}

func supportedContentType(contentType string) bool {
	switch {
	case strings.HasPrefix(contentType, "application/json"),
		strings.HasPrefix(contentType, "application/x-www-form-urlencoded"),
		strings.HasPrefix(contentType, "multipart/form-data"):
		return true
	default:
		return false
	}
}
