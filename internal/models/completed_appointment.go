package models

import "time"

// CompletedAppointment é o registro histórico imutável de um atendimento.
// O índice único em OriginalAppointmentID garante no máximo um registro
// por agendamento, mesmo sob promoções concorrentes.
type CompletedAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OriginalAppointmentID uint `gorm:"uniqueIndex;not null" json:"original_appointment_id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Operation string  `gorm:"size:100;not null" json:"operation"`
	Date      string  `gorm:"size:10;index;not null" json:"date"`
	Time      string  `gorm:"size:16;not null" json:"time"`
	Price     float64 `json:"price"`

	CompletedAt time.Time `json:"completed_at"`
}
