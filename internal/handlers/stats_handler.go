package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/daterange"
	"github.com/BruksfildServices01/barber-manager/internal/dto"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
	ucStats "github.com/BruksfildServices01/barber-manager/internal/usecase/stats"
)

type StatsHandler struct {
	aggregator *ucStats.Aggregator
}

func NewStatsHandler(aggregator *ucStats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: aggregator}
}

// Agregado sempre responde valor; erro de leitura vira zero no corpo,
// nunca status de erro.

func (h *StatsHandler) Daily(c *gin.Context) {
	h.writeSummary(c, "daily", daterange.Day(timezone.Now()))
}

func (h *StatsHandler) Weekly(c *gin.Context) {
	h.writeSummary(c, "weekly", daterange.WeeklyWindow(timezone.Now()))
}

func (h *StatsHandler) Monthly(c *gin.Context) {
	h.writeSummary(c, "monthly", daterange.MonthlyWindow(timezone.Now()))
}

func (h *StatsHandler) WeeklyBreakdown(c *gin.Context) {
	data := h.aggregator.WeeklyBreakdown(c.Request.Context())
	httpresp.List(c, data)
}

func (h *StatsHandler) writeSummary(c *gin.Context, period string, r daterange.Range) {
	ctx := c.Request.Context()

	httpresp.OK(c, dto.StatsSummaryDTO{
		Period:   period,
		Start:    r.StartKey(),
		End:      r.EndKey(),
		Earnings: h.aggregator.SumEarnings(ctx, r),
		Count:    h.aggregator.CountCompleted(ctx, r),
	})
}
