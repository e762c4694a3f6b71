package repository

import (
	"context"
	"errors"

	"panelboard/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByPanelID(ctx context.Context, panelID uint) ([]model.Card, error)
	GetInPanel(ctx context.Context, panelID, cardID uint) (*model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, panelID, cardID uint) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetByPanelID retrieves all cards in a specific panel
func (r *CardRepository) GetByPanelID(ctx context.Context, panelID uint) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("panel_id = ?", panelID).Order("id").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// GetInPanel retrieves a card only if it belongs to the given panel
func (r *CardRepository) GetInPanel(ctx context.Context, panelID, cardID uint) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ? AND panel_id = ?", cardID, panelID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// Update rewrites the geometry and title of a card, scoped to its panel
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ? AND panel_id = ?", card.ID, card.PanelID).
		Updates(map[string]any{
			"title":   card.Title,
			"coord_x": card.CoordX,
			"coord_y": card.CoordY,
			"width":   card.Width,
			"height":  card.Height,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card from a panel
func (r *CardRepository) Delete(ctx context.Context, panelID, cardID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ? AND panel_id = ?", cardID, panelID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
