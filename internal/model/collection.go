package model

type Collection struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ItemIDs     []uint `gorm:"serializer:json;type:text" json:"items"`
	AuditFields
}
