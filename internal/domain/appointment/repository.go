package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Store interface {
	// -------- Appointment --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Completed (histórico) --------
	ListCompletedByDate(
		ctx context.Context,
		date string,
	) ([]models.CompletedAppointment, error)

	ListCompletedBetween(
		ctx context.Context,
		start string,
		end string,
	) ([]models.CompletedAppointment, error)

	// InsertCompletedIfAbsent insere com semântica de ignorar conflito no
	// índice único de original_appointment_id. Retorna false quando já
	// existia registro para o mesmo agendamento.
	InsertCompletedIfAbsent(
		ctx context.Context,
		rec *models.CompletedAppointment,
	) (bool, error)

	HasCompletedForOriginal(
		ctx context.Context,
		originalID uint,
	) (bool, error)

	HasCompletedWithDetails(
		ctx context.Context,
		date string,
		timeOfDay string,
		name string,
	) (bool, error)

	// -------- Aggregates --------
	SumCompletedEarnings(
		ctx context.Context,
		start string,
		end string,
	) (float64, error)

	CountCompleted(
		ctx context.Context,
		start string,
		end string,
	) (int64, error)

	CountCompletedOn(
		ctx context.Context,
		date string,
	) (int64, error)

	// -------- Price list --------
	ListOperationPrices(
		ctx context.Context,
	) ([]models.OperationPrice, error)

	GetOperationPriceByName(
		ctx context.Context,
		name string,
	) (*models.OperationPrice, error)

	UpsertOperationPrice(
		ctx context.Context,
		op *models.OperationPrice,
	) error

	DeleteOperationPrice(
		ctx context.Context,
		id uint,
	) error
}
