package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

// SchemaRepositoryInterface is the store of immutable, versioned field
// schemas. Versions are only ever appended; the single mutation path
// (UpdateFields) exists for the latest version of a form with zero responses.
type SchemaRepositoryInterface interface {
	AppendVersion(ctx context.Context, version *db_models.FormVersion) error
	LatestVersion(ctx context.Context, formID uint) (*db_models.FormVersion, error)
	ListByForm(ctx context.Context, formID uint) ([]db_models.FormVersion, error)
	UpdateFields(ctx context.Context, versionID uint, fields []byte) error
}

type SchemaRepository struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) SchemaRepositoryInterface {
	return &SchemaRepository{db: db}
}

func (r *SchemaRepository) AppendVersion(ctx context.Context, version *db_models.FormVersion) error {
	return r.db.WithContext(ctx).Create(version).Error
}

func (r *SchemaRepository) LatestVersion(ctx context.Context, formID uint) (*db_models.FormVersion, error) {
	var version db_models.FormVersion
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("version_number DESC").
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}

func (r *SchemaRepository) ListByForm(ctx context.Context, formID uint) ([]db_models.FormVersion, error) {
	var versions []db_models.FormVersion
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("version_number ASC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *SchemaRepository) UpdateFields(ctx context.Context, versionID uint, fields []byte) error {
	return r.db.WithContext(ctx).
		Model(&db_models.FormVersion{}).
		Where("id = ?", versionID).
		Update("fields", fields).Error
}
