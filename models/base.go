package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm kayıt türlerinin ortak alanları.
// CreatedAt store tarafından atanır ve sonradan değiştirilmez.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
