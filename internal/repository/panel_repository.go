package repository

import (
	"context"
	"errors"

	"panelboard/internal/model"

	"gorm.io/gorm"
)

type PanelRepository struct {
	db *gorm.DB
}

type PanelRepositoryInterface interface {
	Create(ctx context.Context, panel *model.Panel) error
	GetOwned(ctx context.Context, ownerID uint) ([]model.Panel, error)
	GetByID(ctx context.Context, id uint) (*model.Panel, error)
	Update(ctx context.Context, panel *model.Panel) error
	Delete(ctx context.Context, id uint) error
}

var _ PanelRepositoryInterface = (*PanelRepository)(nil)

func NewPanelRepository(db *gorm.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

func (r *PanelRepository) Create(ctx context.Context, panel *model.Panel) error {
	return r.db.WithContext(ctx).Create(panel).Error
}

func (r *PanelRepository) GetOwned(ctx context.Context, ownerID uint) ([]model.Panel, error) {
	var panels []model.Panel
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&panels).Error
	return panels, err
}

func (r *PanelRepository) GetByID(ctx context.Context, id uint) (*model.Panel, error) {
	var panel model.Panel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&panel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil to indicate that the panel was not found
		}
		return nil, err
	}
	return &panel, nil
}

func (r *PanelRepository) Update(ctx context.Context, panel *model.Panel) error {
	result := r.db.WithContext(ctx).Model(&model.Panel{}).
		Where("id = ?", panel.ID).
		Update("name", panel.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPanelNotFound
	}
	return nil
}

// Delete removes a panel and its cards.
func (r *PanelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("panel_id = ?", id).Delete(&model.Card{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Panel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPanelNotFound
		}
		return nil
	})
}
