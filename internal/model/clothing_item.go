package model

import "time"

type ClothingItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `gorm:"size:100" json:"category"`
	Size         string     `gorm:"size:20" json:"size"`
	Color        string     `gorm:"size:50" json:"color"`
	Price        float64    `json:"price"`
	PurchaseDate *time.Time `json:"purchase_date"`
	// ImagePath is empty until an upload succeeds.
	ImagePath string `gorm:"size:500" json:"image_path"`
	AuditFields
}
