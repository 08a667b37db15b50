package model

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Salt         string `gorm:"size:64;not null" json:"-"`
	AuditFields
}
