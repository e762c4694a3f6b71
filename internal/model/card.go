package model

import (
	"time"
)

// Card is a positioned rectangle inside a panel.
type Card struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	CoordX    int       `gorm:"not null"`
	CoordY    int       `gorm:"not null"`
	Width     int       `gorm:"not null"`
	Height    int       `gorm:"not null"`
	PanelID   uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
