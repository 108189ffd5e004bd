package services

import (
	"context"

	"devmatter/internal/models/db_models"
	"devmatter/internal/models/request_models"
	"devmatter/internal/models/response_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/fields"
	"devmatter/pkg/utils"
)

var defaultFields = []fields.Field{
	{ID: "full-name", Type: fields.TypeString, Label: "Full name", Required: true},
}

type FormServiceInterface interface {
	CreateForm(ctx context.Context, userID, appID uint) (*response_models.FormDetailResponse, error)
	GetForm(ctx context.Context, userID, formID uint) (*response_models.FormDetailResponse, error)
	UpdateForm(ctx context.Context, userID, formID uint, req request_models.UpdateFormRequest) error
	ArchiveResponse(ctx context.Context, userID, responseID uint, archived bool) error
}

type FormService struct {
	formRepo     repositories.FormRepositoryInterface
	schemaRepo   repositories.SchemaRepositoryInterface
	responseRepo repositories.ResponseRepositoryInterface
	appRepo      repositories.AppRepositoryInterface
}

func NewFormService(
	formRepo repositories.FormRepositoryInterface,
	schemaRepo repositories.SchemaRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	appRepo repositories.AppRepositoryInterface,
) FormServiceInterface {
	return &FormService{
		formRepo:     formRepo,
		schemaRepo:   schemaRepo,
		responseRepo: responseRepo,
		appRepo:      appRepo,
	}
}

func (s *FormService) CreateForm(ctx context.Context, userID, appID uint) (*response_models.FormDetailResponse, error) {
	app, err := s.appRepo.FindByID(ctx, appID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, utils.ErrAppNotFound
	}
	if app.UserID != userID {
		return nil, utils.ErrForbidden
	}

	form := &db_models.Form{
		AppID: appID,
		Name:  "Untitled form",
	}
	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, utils.ErrDatabaseError
	}

	encoded, err := fields.Marshal(defaultFields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	version := &db_models.FormVersion{
		FormID:        form.ID,
		VersionNumber: 1,
		Fields:        encoded,
	}
	if err := s.schemaRepo.AppendVersion(ctx, version); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FormDetailResponse{
		Form: *form,
		App: response_models.AppSummary{
			ID:     app.ID,
			Name:   app.Name,
			UserID: app.UserID,
			URL:    app.URL,
		},
		Versions: []db_models.FormVersion{*version},
	}, nil
}

func (s *FormService) GetForm(ctx context.Context, userID, formID uint) (*response_models.FormDetailResponse, error) {
	form, err := s.ownedForm(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	versions, err := s.schemaRepo.ListByForm(ctx, formID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	versionIDs := make([]uint, 0, len(versions))
	for _, v := range versions {
		versionIDs = append(versionIDs, v.ID)
	}
	responses, err := s.responseRepo.ListByVersions(ctx, versionIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FormDetailResponse{
		Form: *form,
		App: response_models.AppSummary{
			ID:     form.App.ID,
			Name:   form.App.Name,
			UserID: form.App.UserID,
			URL:    form.App.URL,
		},
		Versions:  versions,
		Responses: responses,
	}, nil
}

// UpdateForm applies a PATCH. Field edits follow the schema edit policy: a
// latest version that already has responses stays immutable and the edit
// appends a new version; a version nobody has submitted against is updated
// in place so no orphaned empty versions pile up.
func (s *FormService) UpdateForm(ctx context.Context, userID, formID uint, req request_models.UpdateFormRequest) error {
	if _, err := s.ownedForm(ctx, userID, formID); err != nil {
		return err
	}

	if len(req.Fields) > 0 {
		normalized, err := fields.Normalize(req.Fields)
		if err != nil {
			return err
		}
		encoded, err := fields.Marshal(normalized)
		if err != nil {
			return utils.ErrDatabaseError
		}

		latest, err := s.schemaRepo.LatestVersion(ctx, formID)
		if err != nil || latest == nil {
			return utils.ErrDatabaseError
		}

		hasResponses, err := s.responseRepo.HasResponses(ctx, latest.ID)
		if err != nil {
			return utils.ErrDatabaseError
		}

		if hasResponses {
			if err := s.schemaRepo.AppendVersion(ctx, &db_models.FormVersion{
				FormID:        formID,
				VersionNumber: latest.VersionNumber + 1,
				Fields:        encoded,
			}); err != nil {
				return utils.ErrDatabaseError
			}
		} else {
			if err := s.schemaRepo.UpdateFields(ctx, latest.ID, encoded); err != nil {
				return utils.ErrDatabaseError
			}
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Public != nil {
		updates["public"] = *req.Public
	}
	if req.RedirectOnSubmit != nil {
		updates["redirect_on_submit"] = *req.RedirectOnSubmit
	}
	if req.SuccessURL != nil {
		updates["success_url"] = *req.SuccessURL
	}
	if req.FailureURL != nil {
		updates["failure_url"] = *req.FailureURL
	}
	if len(updates) > 0 {
		if err := s.formRepo.Update(ctx, formID, updates); err != nil {
			return utils.ErrDatabaseError
		}
	}

	return nil
}

func (s *FormService) ArchiveResponse(ctx context.Context, userID, responseID uint, archived bool) error {
	response, err := s.responseRepo.FindByIDWithOwner(ctx, responseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if response == nil {
		return utils.ErrResponseNotFound
	}
	if response.FormVersion.Form.App.UserID != userID {
		return utils.ErrForbidden
	}

	return s.responseRepo.SetArchived(ctx, responseID, archived)
}

func (s *FormService) ownedForm(ctx context.Context, userID, formID uint) (*db_models.Form, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if form == nil {
		return nil, utils.ErrFormNotFound
	}
	if form.App.UserID != userID {
		return nil, utils.ErrForbidden
	}
	return form, nil
}
