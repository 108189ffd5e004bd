package services

import (
	"context"
	"strings"

	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

// AccessServiceInterface decides whether a submission may proceed. Public
// forms always pass; private forms require a Bearer secret key belonging to
// the form's own app.
type AccessServiceInterface interface {
	Resolve(ctx context.Context, form *db_models.Form, authHeader string) *utils.SubmissionError
}

type AccessService struct {
	secretKeyRepo repositories.SecretKeyRepositoryInterface
}

func NewAccessService(secretKeyRepo repositories.SecretKeyRepositoryInterface) AccessServiceInterface {
	return &AccessService{secretKeyRepo: secretKeyRepo}
}

func (s *AccessService) Resolve(ctx context.Context, form *db_models.Form, authHeader string) *utils.SubmissionError {
	if form.Public {
		return nil
	}

	if authHeader == "" {
		return utils.ErrMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return utils.ErrInvalidAuthHeader
	}

	key, err := s.secretKeyRepo.FindByHash(ctx, utils.HashSecretKey(parts[1]))
	if err != nil {
		return utils.ErrSubmissionInternal
	}
	if key == nil {
		return utils.ErrInvalidSecretKey
	}

	// A key from another tenant's app must not open this form, even though
	// its hash resolved.
	if key.AppID != form.AppID {
		return utils.ErrInvalidApp
	}

	return nil
}
