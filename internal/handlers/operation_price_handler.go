package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type OperationPriceHandler struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewOperationPriceHandler(
	store domain.Store,
	audit *audit.Dispatcher,
) *OperationPriceHandler {
	return &OperationPriceHandler{
		store: store,
		audit: audit,
	}
}

type OperationPriceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

func (h *OperationPriceHandler) List(c *gin.Context) {
	prices, err := h.store.ListOperationPrices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, prices)
}

// Upsert cria ou atualiza pelo nome. Reprecificar não altera snapshots
// de agendamentos já existentes.
func (h *OperationPriceHandler) Upsert(c *gin.Context) {
	var req OperationPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	op := &models.OperationPrice{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := h.store.UpsertOperationPrice(c.Request.Context(), op); err != nil {
		httperr.Internal(c, "upsert_failed", "Erro ao salvar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "operation_price_upserted",
		Entity:   "operation_price",
		EntityID: &op.ID,
	})

	httpresp.OK(c, op)
}

func (h *OperationPriceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteOperationPrice(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "operation_price_deleted",
		Entity:   "operation_price",
		EntityID: &id,
	})

	c.Status(204)
}
