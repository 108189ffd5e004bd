package services

import (
	"context"

	"devmatter/internal/models/db_models"
	"devmatter/internal/models/response_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

type SecretKeyServiceInterface interface {
	CreateSecretKey(ctx context.Context, userID, appID uint, name string) (*response_models.CreatedSecretKeyResponse, error)
	RevokeSecretKey(ctx context.Context, userID, keyID uint) error
}

type SecretKeyService struct {
	secretKeyRepo repositories.SecretKeyRepositoryInterface
	appRepo       repositories.AppRepositoryInterface
}

func NewSecretKeyService(
	secretKeyRepo repositories.SecretKeyRepositoryInterface,
	appRepo repositories.AppRepositoryInterface,
) SecretKeyServiceInterface {
	return &SecretKeyService{secretKeyRepo: secretKeyRepo, appRepo: appRepo}
}

func (s *SecretKeyService) CreateSecretKey(ctx context.Context, userID, appID uint, name string) (*response_models.CreatedSecretKeyResponse, error) {
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

	plaintext, err := utils.GenerateSecretKey()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	key := &db_models.SecretKey{
		AppID: appID,
		Name:  name,
		Hash:  utils.HashSecretKey(plaintext),
	}
	if err := s.secretKeyRepo.Create(ctx, key); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreatedSecretKeyResponse{
		ID:  key.ID,
		Key: plaintext,
	}, nil
}

func (s *SecretKeyService) RevokeSecretKey(ctx context.Context, userID, keyID uint) error {
	key, err := s.secretKeyRepo.FindByIDWithApp(ctx, keyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if key == nil {
		return utils.ErrSecretKeyNotFound
	}
	if key.App.UserID != userID {
		return utils.ErrForbidden
	}
	if err := s.secretKeyRepo.Delete(ctx, keyID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
