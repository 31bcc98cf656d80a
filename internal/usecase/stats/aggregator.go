package stats

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/BruksfildServices01/barber-manager/internal/daterange"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/logging"
	"github.com/BruksfildServices01/barber-manager/internal/statscache"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Summary struct {
	Earnings float64 `json:"earnings"`
	Count    int64   `json:"count"`
}

// ======================================================
// AGGREGATOR
// ======================================================

// Aggregator deriva somas e contagens do histórico de atendimentos.
// Erro de leitura nunca chega ao consumidor: o agregado degrada para
// zero e o problema fica no log.
type Aggregator struct {
	store domain.Store
	cache statscache.DayCounts
	group singleflight.Group
	now   func() time.Time
	log   zerolog.Logger

	// breakdown semanal memoizado pela data corrente; vira a data,
	// vira o cache
	mu          sync.Mutex
	weeklyKey   string
	weeklyCache []DayCount
}

func NewAggregator(
	store domain.Store,
	cache statscache.DayCounts,
) *Aggregator {
	return &Aggregator{
		store: store,
		cache: cache,
		now:   timezone.Now,
		log:   logging.For("stats"),
	}
}

// --------------------------------------------------
// Sums / counts
// --------------------------------------------------

func (a *Aggregator) SumEarnings(ctx context.Context, r daterange.Range) float64 {
	total, err := a.store.SumCompletedEarnings(ctx, r.StartKey(), r.EndKey())
	if err != nil {
		a.log.Error().Err(err).
			Str("start", r.StartKey()).
			Str("end", r.EndKey()).
			Msg("earnings sum failed")
		return 0
	}
	return total
}

func (a *Aggregator) CountCompleted(ctx context.Context, r daterange.Range) int64 {
	count, err := a.store.CountCompleted(ctx, r.StartKey(), r.EndKey())
	if err != nil {
		a.log.Error().Err(err).
			Str("start", r.StartKey()).
			Str("end", r.EndKey()).
			Msg("count failed")
		return 0
	}
	return count
}

func (a *Aggregator) DailySummary(ctx context.Context) Summary {
	return a.summary(ctx, daterange.Day(a.now()))
}

func (a *Aggregator) WeeklySummary(ctx context.Context) Summary {
	return a.summary(ctx, daterange.WeeklyWindow(a.now()))
}

func (a *Aggregator) MonthlySummary(ctx context.Context) Summary {
	return a.summary(ctx, daterange.MonthlyWindow(a.now()))
}

func (a *Aggregator) summary(ctx context.Context, r daterange.Range) Summary {
	return Summary{
		Earnings: a.SumEarnings(ctx, r),
		Count:    a.CountCompleted(ctx, r),
	}
}

// --------------------------------------------------
// Per-day breakdown (gráficos)
// --------------------------------------------------

// PerDayBreakdown produz um par (data, contagem) por dia do intervalo,
// em ordem crescente. É o caminho pesado, servido pelo cache por data;
// assinantes concorrentes da mesma data dividem um único cálculo.
func (a *Aggregator) PerDayBreakdown(ctx context.Context, r daterange.Range) []DayCount {
	days := r.Days()
	out := make([]DayCount, 0, len(days))

	for _, day := range days {
		key := day.Format(daterange.Layout)
		out = append(out, DayCount{Date: key, Count: a.countOn(ctx, key)})
	}

	return out
}

// WeeklyBreakdown é o breakdown da semana corrente, memoizado pela data
// do relógio: recalcula quando o dia vira.
func (a *Aggregator) WeeklyBreakdown(ctx context.Context) []DayCount {
	today := a.now().Format(daterange.Layout)

	a.mu.Lock()
	if a.weeklyKey == today && a.weeklyCache != nil {
		cached := make([]DayCount, len(a.weeklyCache))
		copy(cached, a.weeklyCache)
		a.mu.Unlock()
		return cached
	}
	a.mu.Unlock()

	data := a.PerDayBreakdown(ctx, daterange.WeeklyWindow(a.now()))

	a.mu.Lock()
	a.weeklyKey = today
	a.weeklyCache = data
	a.mu.Unlock()

	return data
}

func (a *Aggregator) countOn(ctx context.Context, date string) int64 {
	if a.cache != nil {
		if count, ok := a.cache.Get(ctx, date); ok {
			return count
		}
	}

	v, err, _ := a.group.Do(date, func() (any, error) {
		return a.store.CountCompletedOn(ctx, date)
	})
	if err != nil {
		a.log.Error().Err(err).Str("date", date).Msg("day count failed")
		return 0
	}

	count := v.(int64)
	if a.cache != nil {
		a.cache.Set(ctx, date, count)
	}
	return count
}

// --------------------------------------------------
// Invalidation
// --------------------------------------------------

// Invalidate derruba os agregados memoizados de uma data cujo conjunto
// concluído mudou (promoção dentro da mesma sessão).
func (a *Aggregator) Invalidate(ctx context.Context, date string) {
	if a.cache != nil {
		a.cache.Invalidate(ctx, date)
	}

	a.mu.Lock()
	a.weeklyKey = ""
	a.weeklyCache = nil
	a.mu.Unlock()
}
