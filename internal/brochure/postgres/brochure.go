package postgres

import (
	"context"

	"gorm.io/gorm"

	brochurepkg "github.com/tradingwalla/backend/internal/brochure"
	brochuremodel "github.com/tradingwalla/backend/internal/core/datamodel/brochure"
)

type BrochureRepository struct {
	db *gorm.DB
}

func NewBrochureRepository(db *gorm.DB) brochurepkg.RepositoryAPI {
	return &BrochureRepository{db: db}
}

func (r *BrochureRepository) Create(ctx context.Context, b *brochuremodel.Brochure) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BrochureRepository) ListAll(ctx context.Context) ([]*brochuremodel.Brochure, error) {
	var brochures []*brochuremodel.Brochure
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&brochures).Error
	return brochures, err
}
