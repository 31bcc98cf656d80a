package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/logging"
)

// LeadTime é a antecedência do lembrete sobre o início do slot.
const LeadTime = 5 * time.Minute

type Payload struct {
	AppointmentID uint   `json:"appointment_id"`
	Name          string `json:"name"`
	Operation     string `json:"operation"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// Gateway agenda uma entrega única em "agora + delay", cancelável por
// chave. Delay não positivo é ignorado em silêncio — o slot está perto
// demais para valer um lembrete.
type Gateway interface {
	ScheduleAt(key string, delay time.Duration, payload Payload)
	Cancel(key string)
}

func Key(appointmentID uint) string {
	return fmt.Sprintf("appointment:%d", appointmentID)
}

// Delay calcula a espera até (início do slot − LeadTime).
func Delay(slotStart, now time.Time) time.Duration {
	return slotStart.Add(-LeadTime).Sub(now)
}

// --------------------------------------------------
// Timer table
// --------------------------------------------------

type DeliverFunc func(Payload)

type TimerGateway struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	deliver DeliverFunc
	log     zerolog.Logger
}

func NewTimerGateway(deliver DeliverFunc) *TimerGateway {
	g := &TimerGateway{
		timers: make(map[string]*time.Timer),
		log:    logging.For("reminder"),
	}

	if deliver == nil {
		deliver = func(p Payload) {
			g.log.Info().
				Uint("appointment_id", p.AppointmentID).
				Str("name", p.Name).
				Str("time", p.Time).
				Msg("reminder fired")
		}
	}
	g.deliver = deliver

	return g
}

func (g *TimerGateway) ScheduleAt(key string, delay time.Duration, payload Payload) {
	if delay <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// reagendamento substitui a entrega anterior da mesma chave
	if prev, ok := g.timers[key]; ok {
		prev.Stop()
	}

	g.timers[key] = time.AfterFunc(delay, func() {
		g.mu.Lock()
		delete(g.timers, key)
		g.mu.Unlock()

		g.deliver(payload)
	})
}

func (g *TimerGateway) Cancel(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.timers[key]; ok {
		t.Stop()
		delete(g.timers, key)
	}
}

// Stop cancela tudo que ainda não disparou.
func (g *TimerGateway) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, t := range g.timers {
		t.Stop()
		delete(g.timers, key)
	}
}

var _ Gateway = (*TimerGateway)(nil)
