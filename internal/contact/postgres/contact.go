package postgres

import (
	"context"

	"gorm.io/gorm"

	contactpkg "github.com/tradingwalla/backend/internal/contact"
	contactmodel "github.com/tradingwalla/backend/internal/core/datamodel/contact"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) contactpkg.RepositoryAPI {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *contactmodel.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]*contactmodel.Contact, error) {
	var contacts []*contactmodel.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}
