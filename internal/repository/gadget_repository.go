package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"imf-gadget-api/internal/model"
)

type GormGadgetRepository struct {
	db *gorm.DB
}

func NewGadgetRepository(db *gorm.DB) *GormGadgetRepository {
	return &GormGadgetRepository{db: db}
}

func (r *GormGadgetRepository) Create(ctx context.Context, gadget *model.Gadget) error {
	if err := r.db.WithContext(ctx).Create(gadget).Error; err != nil {
		return fmt.Errorf("create gadget failed: %w", err)
	}
	return nil
}

func (r *GormGadgetRepository) GetByID(ctx context.Context, id string) (*model.Gadget, error) {
	var gadget model.Gadget
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&gadget).Error; err != nil {
		return nil, fmt.Errorf("query gadget by id failed: %w", err)
	}
	return &gadget, nil
}

func (r *GormGadgetRepository) List(ctx context.Context, status *model.GadgetStatus) ([]model.Gadget, error) {
	query := r.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var gadgets []model.Gadget
	if err := query.Order("created_at ASC").Find(&gadgets).Error; err != nil {
		return nil, fmt.Errorf("list gadgets failed: %w", err)
	}
	return gadgets, nil
}

func (r *GormGadgetRepository) Save(ctx context.Context, gadget *model.Gadget) error {
	if err := r.db.WithContext(ctx).Save(gadget).Error; err != nil {
		return fmt.Errorf("save gadget failed: %w", err)
	}
	return nil
}
