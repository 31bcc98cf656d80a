package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/reminder"
	"github.com/BruksfildServices01/barber-manager/internal/statscache"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
	ucStats "github.com/BruksfildServices01/barber-manager/internal/usecase/stats"
)

// RegisterRoutes monta infra, use cases e rotas. Devolve a varredura de
// status para o reconciler de fundo do main.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cache statscache.DayCounts,
	reminders reminder.Gateway,
) *ucAppointment.ReconcileStatuses {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	aggregator := ucStats.NewAggregator(store, cache)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(store, auditDispatcher, reminders)
	updateUC := ucAppointment.NewUpdateAppointment(store, auditDispatcher, reminders)
	deleteUC := ucAppointment.NewDeleteAppointment(store, auditDispatcher, reminders)
	completeUC := ucAppointment.NewCompleteAppointment(store, auditDispatcher, aggregator)
	reconcileUC := ucAppointment.NewReconcileStatuses(store, completeUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		store,
		createUC,
		updateUC,
		deleteUC,
		completeUC,
	)
	statsHandler := handlers.NewStatsHandler(aggregator)
	priceHandler := handlers.NewOperationPriceHandler(store, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/by-date", appointmentHandler.ListByDate)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.GET("/history", appointmentHandler.History)

		// ------------------------------
		// STATS
		// ------------------------------
		api.GET("/stats/daily", statsHandler.Daily)
		api.GET("/stats/weekly", statsHandler.Weekly)
		api.GET("/stats/monthly", statsHandler.Monthly)
		api.GET("/stats/weekly/breakdown", statsHandler.WeeklyBreakdown)

		// ------------------------------
		// PRICE LIST
		// ------------------------------
		api.GET("/prices", priceHandler.List)
		api.POST("/prices", priceHandler.Upsert)
		api.DELETE("/prices/:id", priceHandler.Delete)
	}

	return reconcileUC
}
