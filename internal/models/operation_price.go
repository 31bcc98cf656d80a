package models

import "time"

type OperationPrice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
