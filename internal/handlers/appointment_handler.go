package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store      domain.Store
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	completeUC *ucAppointment.CompleteAppointment
}

func NewAppointmentHandler(
	store domain.Store,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	completeUC *ucAppointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:      store,
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		completeUC: completeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Name      string `json:"name" binding:"required"`
	Operation string `json:"operation" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Name:      req.Name,
		Operation: req.Operation,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:        id,
		Name:      req.Name,
		Operation: req.Operation,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.Status(204)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	promoted, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	// promoção duplicada é resultado definido, não erro
	httpresp.OK(c, gin.H{"promoted": promoted})
}

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "date_required", "Informe a data.")
		return
	}

	apps, err := h.store.ListAppointmentsByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

// History lista o histórico imutável de atendimentos, por data exata ou
// por intervalo inclusivo.
func (h *AppointmentHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		recs, err := h.store.ListCompletedByDate(ctx, date)
		if err != nil {
			httperr.Internal(c, "list_failed", "Erro ao listar histórico.")
			return
		}
		httpresp.List(c, recs)
		return
	}

	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		httperr.BadRequest(c, "range_required", "Informe data ou intervalo.")
		return
	}

	recs, err := h.store.ListCompletedBetween(ctx, start, end)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, recs)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func writeAppointmentError(c *gin.Context, err error) {
	var conflict domain.SlotConflictError
	if errors.As(err, &conflict) {
		httperr.Conflict(c, "time_conflict", fmt.Sprintf(
			"Horário ocupado por %s às %s.",
			conflict.With.Name,
			conflict.With.Time,
		))
		return
	}

	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "operation_not_found"):
		httperr.BadRequest(c, "operation_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "name_required"):
		httperr.BadRequest(c, "name_required", "Informe o nome do cliente.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Agendamento já concluído.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
