package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

const (
	// SlotDuration é a janela reservada por um agendamento.
	SlotDuration = 30 * time.Minute

	// StatusGrace é a tolerância além do slot antes da conclusão automática.
	StatusGrace = 1 * time.Minute
)

const DateLayout = "2006-01-02"

// Formatos aceitos para hora do dia. Qualquer outra coisa é erro de dados:
// o chamador loga e pula o registro, nunca coage o valor.
var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
}

// ===============================
// Parsing
// ===============================

func ParseTimeOfDay(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", value)
}

// SlotStart resolve o início do slot no timezone informado.
func SlotStart(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), tod.Nanosecond(),
		loc,
	), nil
}

// ===============================
// Domain Rules
// ===============================

// DetermineStatus é função pura: concluído quando `now` passa do início do
// slot mais 31 minutos (slot de 30 + 1 de tolerância).
func DetermineStatus(date, timeOfDay string, now time.Time) (Status, error) {
	start, err := SlotStart(date, timeOfDay, now.Location())
	if err != nil {
		return StatusPending, err
	}

	if now.After(start.Add(SlotDuration + StatusGrace)) {
		return StatusCompleted, nil
	}
	return StatusPending, nil
}

// CanComplete define se um agendamento pode ser promovido
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
