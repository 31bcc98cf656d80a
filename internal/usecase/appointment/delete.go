package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/reminder"
)

type DeleteAppointment struct {
	store     domain.Store
	audit     *audit.Dispatcher
	reminders reminder.Gateway
}

func NewDeleteAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
	reminders reminder.Gateway,
) *DeleteAppointment {
	return &DeleteAppointment{
		store:     store,
		audit:     audit,
		reminders: reminders,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
) error {

	ap, err := uc.store.GetAppointmentByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	// apagar o agendamento não toca o histórico já promovido
	if err := uc.store.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	if uc.reminders != nil {
		uc.reminders.Cancel(reminder.Key(ap.ID))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
