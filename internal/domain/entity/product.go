package entity

import (
	"strings"
	"time"
)

type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:2000"`
	Price       float64   `json:"price" gorm:"not null"`
	Image       string    `json:"image" gorm:"size:2000"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	Bestseller  bool      `json:"bestseller" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Images splits the comma-separated image column into individual references.
// Zero, one, or many entries are all valid.
func (p Product) Images() []string {
	if strings.TrimSpace(p.Image) == "" {
		return nil
	}
	parts := strings.Split(p.Image, ",")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}
