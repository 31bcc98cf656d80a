package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/logging"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// CacheInvalidator derruba agregados memoizados da data cujo conjunto
// concluído mudou.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, date string)
}

// ======================================================
// USE CASE
// ======================================================

// CompleteAppointment promove um agendamento pendente para o histórico.
// Garantia central: no máximo um CompletedAppointment por agendamento,
// mesmo com a varredura automática e o usuário disputando a mesma
// promoção. Quem decide é o índice único + insert ignorando conflito;
// as checagens de existência são só atalho.
type CompleteAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
	cache CacheInvalidator
	now   func() time.Time
	log   zerolog.Logger
}

func NewCompleteAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
	cache CacheInvalidator,
) *CompleteAppointment {
	return &CompleteAppointment{
		store: store,
		audit: audit,
		cache: cache,
		now:   timezone.Now,
		log:   logging.For("lifecycle"),
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	ap, err := uc.store.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return false, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.Promote(ctx, ap)
}

// Promote devolve (true, nil) quando este chamador criou o registro
// histórico; (false, nil) quando a promoção já tinha acontecido —
// resultado definido, não erro. Falha de I/O é logada e devolvida como
// "nada mudou"; ninguém faz retry aqui.
func (uc *CompleteAppointment) Promote(
	ctx context.Context,
	ap *models.Appointment,
) (bool, error) {

	if ap.Status == string(domain.StatusCompleted) {
		return false, nil
	}

	// atalho 1: já existe registro para este agendamento
	exists, err := uc.store.HasCompletedForOriginal(ctx, ap.ID)
	if err != nil {
		uc.log.Error().Err(err).Uint("id", ap.ID).Msg("existence check failed")
		return false, err
	}
	if exists {
		return false, nil
	}

	// atalho 2: mesmo (data, hora, nome) — defesa contra reuso de id
	// depois de apagar e recriar
	exists, err = uc.store.HasCompletedWithDetails(ctx, ap.Date, ap.Time, ap.Name)
	if err != nil {
		uc.log.Error().Err(err).Uint("id", ap.ID).Msg("details check failed")
		return false, err
	}
	if exists {
		return false, nil
	}

	rec := &models.CompletedAppointment{
		OriginalAppointmentID: ap.ID,
		Name:                  ap.Name,
		Operation:             ap.Operation,
		Date:                  ap.Date,
		Time:                  ap.Time,
		Price:                 ap.Price,
		CompletedAt:           uc.now(),
	}

	inserted, err := uc.store.InsertCompletedIfAbsent(ctx, rec)
	if err != nil {
		uc.log.Error().Err(err).Uint("id", ap.ID).Msg("promotion insert failed")
		return false, err
	}
	if !inserted {
		// corrida perdida para outra promoção concorrente
		return false, nil
	}

	ap.Status = string(domain.StatusCompleted)
	if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
		// histórico já existe; a varredura corrige o status depois
		uc.log.Error().Err(err).Uint("id", ap.ID).Msg("status flip failed")
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return true, nil
}
