package services

import (
	"context"

	"devmatter/internal/models/db_models"
	"devmatter/internal/models/response_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

type AppServiceInterface interface {
	CreateApp(ctx context.Context, userID uint, name, url string) (*db_models.App, error)
	ListApps(ctx context.Context, userID uint) ([]db_models.App, error)
	GetApp(ctx context.Context, userID, appID uint) (*response_models.AppDetailResponse, error)
	UpdateApp(ctx context.Context, userID, appID uint, name, url string) error
	DeleteApp(ctx context.Context, userID, appID uint) error
}

type AppService struct {
	appRepo       repositories.AppRepositoryInterface
	formRepo      repositories.FormRepositoryInterface
	secretKeyRepo repositories.SecretKeyRepositoryInterface
}

func NewAppService(
	appRepo repositories.AppRepositoryInterface,
	formRepo repositories.FormRepositoryInterface,
	secretKeyRepo repositories.SecretKeyRepositoryInterface,
) AppServiceInterface {
	return &AppService{
		appRepo:       appRepo,
		formRepo:      formRepo,
		secretKeyRepo: secretKeyRepo,
	}
}

func (s *AppService) CreateApp(ctx context.Context, userID uint, name, url string) (*db_models.App, error) {
	app := &db_models.App{
		UserID: userID,
		Name:   name,
		URL:    url,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return app, nil
}

func (s *AppService) ListApps(ctx context.Context, userID uint) ([]db_models.App, error) {
	apps, err := s.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return apps, nil
}

func (s *AppService) GetApp(ctx context.Context, userID, appID uint) (*response_models.AppDetailResponse, error) {
	app, err := s.ownedApp(ctx, userID, appID)
	if err != nil {
		return nil, err
	}

	forms, err := s.formRepo.ListByApp(ctx, appID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	keys, err := s.secretKeyRepo.ListByApp(ctx, appID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	detail := &response_models.AppDetailResponse{App: *app}
	for _, f := range forms {
		detail.Forms = append(detail.Forms, response_models.FormSummary{
			ID:     f.ID,
			Name:   f.Name,
			Public: f.Public,
		})
	}
	for _, k := range keys {
		detail.SecretKeys = append(detail.SecretKeys, response_models.SecretKeySummary{
			ID:        k.ID,
			Name:      k.Name,
			CreatedAt: k.CreatedAt,
		})
	}
	return detail, nil
}

func (s *AppService) UpdateApp(ctx context.Context, userID, appID uint, name, url string) error {
	if _, err := s.ownedApp(ctx, userID, appID); err != nil {
		return err
	}
	if err := s.appRepo.Update(ctx, appID, name, url); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AppService) DeleteApp(ctx context.Context, userID, appID uint) error {
	if _, err := s.ownedApp(ctx, userID, appID); err != nil {
		return err
	}
	if err := s.appRepo.Delete(ctx, appID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AppService) ownedApp(ctx context.Context, userID, appID uint) (*db_models.App, error) {
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
	return app, nil
}
