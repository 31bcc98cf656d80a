package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/logging"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ReconcileStatuses é a varredura automática: todo pendente cujo slot
// passou de 31 minutos vira concluído. Cada agendamento é uma unidade
// independente — falha em um não derruba os outros.
type ReconcileStatuses struct {
	store    domain.Store
	complete *CompleteAppointment
	now      func() time.Time
	log      zerolog.Logger
}

func NewReconcileStatuses(
	store domain.Store,
	complete *CompleteAppointment,
) *ReconcileStatuses {
	return &ReconcileStatuses{
		store:    store,
		complete: complete,
		now:      timezone.Now,
		log:      logging.For("reconcile"),
	}
}

func (uc *ReconcileStatuses) Execute(ctx context.Context) error {

	apps, err := uc.store.ListAppointments(ctx)
	if err != nil {
		return err
	}

	now := uc.now()
	var lastErr error

	for i := range apps {
		if err := ctx.Err(); err != nil {
			return err
		}

		ap := &apps[i]
		if ap.Status == string(domain.StatusCompleted) {
			continue
		}

		status, err := domain.DetermineStatus(ap.Date, ap.Time, now)
		if err != nil {
			// hora malformada é problema de dados: loga e pula o
			// registro, sem coagir o valor
			uc.log.Warn().Err(err).Uint("id", ap.ID).Msg("skipping malformed record")
			continue
		}

		if status != domain.StatusCompleted {
			continue
		}

		if _, err := uc.complete.Promote(ctx, ap); err != nil {
			lastErr = err
			continue
		}

		// Promote pode ter retornado falso com o status ainda pendente
		// (histórico já existia); o flip ainda precisa persistir.
		if ap.Status != string(domain.StatusCompleted) {
			ap.Status = string(domain.StatusCompleted)
			if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
				uc.log.Error().Err(err).Uint("id", ap.ID).Msg("status persist failed")
				lastErr = err
			}
		}
	}

	return lastErr
}
