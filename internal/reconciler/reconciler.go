package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/logging"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
)

const (
	sweepSpec  = "@every 5m"
	retryAfter = 30 * time.Second
)

// Reconciler roda a varredura de status em cadência fixa pela vida do
// processo. Passada com erro agenda um retry único de 30s antes da
// cadência normal voltar; cancelamento encerra limpo e não vira log de
// erro.
type Reconciler struct {
	sweep *ucAppointment.ReconcileStatuses
	cron  *cron.Cron
	log   zerolog.Logger

	ctx context.Context

	mu    sync.Mutex
	retry *time.Timer
}

func New(sweep *ucAppointment.ReconcileStatuses) *Reconciler {
	return &Reconciler{
		sweep: sweep,
		log:   logging.For("reconciler"),
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	r.ctx = ctx

	r.cron = cron.New()
	r.cron.AddFunc(sweepSpec, r.run)
	r.cron.Start()

	// primeira varredura já na subida
	go r.run()

	r.log.Info().Str("cadence", sweepSpec).Msg("reconciler started")
}

func (r *Reconciler) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}

	r.mu.Lock()
	if r.retry != nil {
		r.retry.Stop()
		r.retry = nil
	}
	r.mu.Unlock()
}

func (r *Reconciler) run() {
	if r.ctx.Err() != nil {
		return
	}

	err := r.sweep.Execute(r.ctx)
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}

	r.log.Warn().Err(err).Dur("retry_in", retryAfter).Msg("sweep failed, backing off")

	r.mu.Lock()
	if r.retry != nil {
		r.retry.Stop()
	}
	r.retry = time.AfterFunc(retryAfter, r.run)
	r.mu.Unlock()
}
