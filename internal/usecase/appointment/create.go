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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name      string
	Operation string
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store     domain.Store
	audit     *audit.Dispatcher
	reminders reminder.Gateway
	now       func() time.Time
}

func NewCreateAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
	reminders reminder.Gateway,
) *CreateAppointment {
	return &CreateAppointment{
		store:     store,
		audit:     audit,
		reminders: reminders,
		now:       timezone.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.Name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	now := uc.now()

	start, err := domain.SlotStart(in.Date, in.Time, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Preço vem da tabela de operações e fica congelado no agendamento:
	// edições posteriores da tabela não mexem em registros existentes.
	op, err := uc.store.GetOperationPriceByName(ctx, in.Operation)
	if err != nil {
		return nil, httperr.ErrBusiness("operation_not_found")
	}

	ap := &models.Appointment{
		Name:      in.Name,
		Operation: op.Name,
		Date:      in.Date,
		Time:      in.Time,
		Price:     op.Price,
		Status:    string(domain.InitialStatus()),
	}

	sameDate, err := uc.store.ListAppointmentsByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	conflict, err := domain.FindSlotConflict(ap, sameDate, 0)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if conflict != nil {
		return nil, domain.SlotConflictError{With: conflict}
	}

	if err := uc.store.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	scheduleReminder(uc.reminders, ap, start, now)

	return ap, nil
}

// scheduleReminder agenda a entrega 5 minutos antes do slot.
// Delay não positivo é pulado, não é erro.
func scheduleReminder(
	gw reminder.Gateway,
	ap *models.Appointment,
	start time.Time,
	now time.Time,
) {
	if gw == nil {
		return
	}

	gw.ScheduleAt(
		reminder.Key(ap.ID),
		reminder.Delay(start, now),
		reminder.Payload{
			AppointmentID: ap.ID,
			Name:          ap.Name,
			Operation:     ap.Operation,
			Date:          ap.Date,
			Time:          ap.Time,
		},
	)
}
