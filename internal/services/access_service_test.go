package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"devmatter/internal/models/db_models"
	"devmatter/pkg/utils"
)

type fakeSecretKeyRepo struct {
	byHash map[string]*db_models.SecretKey
	err    error
}

func (r *fakeSecretKeyRepo) Create(ctx context.Context, key *db_models.SecretKey) error {
	return nil
}

func (r *fakeSecretKeyRepo) FindByHash(ctx context.Context, hash string) (*db_models.SecretKey, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byHash[hash], nil
}

func (r *fakeSecretKeyRepo) FindByIDWithApp(ctx context.Context, id uint) (*db_models.SecretKey, error) {
	return nil, nil
}

func (r *fakeSecretKeyRepo) ListByApp(ctx context.Context, appID uint) ([]db_models.SecretKey, error) {
	return nil, nil
}

func (r *fakeSecretKeyRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func privateForm(appID uint) *db_models.Form {
	return &db_models.Form{AppID: appID, Public: false}
}

func TestResolvePublicFormSkipsAuth(t *testing.T) {
	svc := NewAccessService(&fakeSecretKeyRepo{})
	form := &db_models.Form{Public: true}

	assert.Nil(t, svc.Resolve(context.Background(), form, ""))
}

func TestResolveMissingHeader(t *testing.T) {
	svc := NewAccessService(&fakeSecretKeyRepo{})

	got := svc.Resolve(context.Background(), privateForm(1), "")
	assert.Equal(t, utils.ErrMissingAuthHeader, got)
}

func TestResolveMalformedHeader(t *testing.T) {
	svc := NewAccessService(&fakeSecretKeyRepo{})

	got := svc.Resolve(context.Background(), privateForm(1), "tr_rawkeywithoutscheme")
	assert.Equal(t, utils.ErrInvalidAuthHeader, got)
}

func TestResolveUnknownKey(t *testing.T) {
	svc := NewAccessService(&fakeSecretKeyRepo{byHash: map[string]*db_models.SecretKey{}})

	got := svc.Resolve(context.Background(), privateForm(1), "Bearer tr_nope")
	assert.Equal(t, utils.ErrInvalidSecretKey, got)
}

func TestResolveKeyFromAnotherApp(t *testing.T) {
	repo := &fakeSecretKeyRepo{byHash: map[string]*db_models.SecretKey{
		utils.HashSecretKey("tr_other"): {AppID: 99},
	}}
	svc := NewAccessService(repo)

	got := svc.Resolve(context.Background(), privateForm(1), "Bearer tr_other")
	assert.Equal(t, utils.ErrInvalidApp, got)
}

func TestResolveMatchingKey(t *testing.T) {
	repo := &fakeSecretKeyRepo{byHash: map[string]*db_models.SecretKey{
		utils.HashSecretKey("tr_good"): {AppID: 1},
	}}
	svc := NewAccessService(repo)

	assert.Nil(t, svc.Resolve(context.Background(), privateForm(1), "Bearer tr_good"))
}

func TestResolveRepositoryFailure(t *testing.T) {
	svc := NewAccessService(&fakeSecretKeyRepo{err: errors.New("connection refused")})

	got := svc.Resolve(context.Background(), privateForm(1), "Bearer tr_any")
	assert.Equal(t, utils.ErrSubmissionInternal, got)
}
