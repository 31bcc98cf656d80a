package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Slot Conflict
// ===============================

// SlotConflictError carrega o agendamento conflitante para a camada de
// apresentação desambiguar ("14:30 já ocupado por Fulano").
type SlotConflictError struct {
	With *models.Appointment
}

func (e SlotConflictError) Error() string {
	return "time_conflict"
}

// FindSlotConflict compara o candidato com os agendamentos do mesmo dia.
// Dois slots conflitam quando os intervalos inclusivos [hora, hora+29min]
// se sobrepõem. O agendamento em edição (excludeID) não conflita consigo
// mesmo. Retorna o primeiro conflito encontrado.
func FindSlotConflict(
	candidate *models.Appointment,
	sameDate []models.Appointment,
	excludeID uint,
) (*models.Appointment, error) {

	start, err := ParseTimeOfDay(candidate.Time)
	if err != nil {
		return nil, err
	}
	end := start.Add(SlotDuration - time.Minute)

	for i := range sameDate {
		other := &sameDate[i]

		if other.ID == excludeID {
			continue
		}

		otherStart, err := ParseTimeOfDay(other.Time)
		if err != nil {
			// registro com hora inválida não participa da checagem
			continue
		}
		otherEnd := otherStart.Add(SlotDuration - time.Minute)

		if !start.After(otherEnd) && !otherStart.After(end) {
			return other, nil
		}
	}

	return nil, nil
}
