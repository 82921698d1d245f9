package postgres

import (
	"context"

	"gorm.io/gorm"

	formmodel "github.com/tradingwalla/backend/internal/core/datamodel/formsubmission"
	formspkg "github.com/tradingwalla/backend/internal/forms"
)

type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) formspkg.RepositoryAPI {
	return &FormRepository{db: db}
}

func (r *FormRepository) Create(ctx context.Context, f *formmodel.FormSubmission) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FormRepository) ListAll(ctx context.Context) ([]*formmodel.FormSubmission, error) {
	var submissions []*formmodel.FormSubmission
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}
