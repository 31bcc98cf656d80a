package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Operation string `gorm:"size:100;not null" json:"operation"`

	// Data e hora locais da barbearia ("2006-01-02" / "15:04")
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:16;not null" json:"time"`

	// Snapshot do preço no momento do agendamento
	Price float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
