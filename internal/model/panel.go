package model

// Panel is a named board owned by exactly one user.
type Panel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`

	Cards []Card `gorm:"foreignKey:PanelID;constraint:OnDelete:CASCADE"`
}
