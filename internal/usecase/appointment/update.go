package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/reminder"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

type UpdateAppointmentInput struct {
	ID        uint
	Name      string
	Operation string
	Date      string
	Time      string
}

type UpdateAppointment struct {
	store     domain.Store
	audit     *audit.Dispatcher
	reminders reminder.Gateway
	now       func() time.Time
}

func NewUpdateAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
	reminders reminder.Gateway,
) *UpdateAppointment {
	return &UpdateAppointment{
		store:     store,
		audit:     audit,
		reminders: reminders,
		now:       timezone.Now,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.store.GetAppointmentByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// concluído é histórico, não se edita
	if ap.Status == string(domain.StatusCompleted) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if in.Name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	now := uc.now()

	start, err := domain.SlotStart(in.Date, in.Time, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	op, err := uc.store.GetOperationPriceByName(ctx, in.Operation)
	if err != nil {
		return nil, httperr.ErrBusiness("operation_not_found")
	}

	ap.Name = in.Name
	ap.Operation = op.Name
	ap.Date = in.Date
	ap.Time = in.Time
	ap.Price = op.Price

	sameDate, err := uc.store.ListAppointmentsByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	// o próprio agendamento em edição não conflita consigo mesmo
	conflict, err := domain.FindSlotConflict(ap, sameDate, ap.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if conflict != nil {
		return nil, domain.SlotConflictError{With: conflict}
	}

	if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	scheduleReminder(uc.reminders, ap, start, now)

	return ap, nil
}
