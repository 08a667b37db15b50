package model

type Outfit struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ItemIDs     []uint `gorm:"serializer:json;type:text" json:"items"`
	// Metadata is a free-form string; clients store JSON in it.
	Metadata string `gorm:"type:text" json:"metadata"`
	IsPublic bool   `gorm:"not null;default:false" json:"is_public"`
	AuditFields
}
