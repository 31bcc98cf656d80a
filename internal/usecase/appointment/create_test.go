package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func TestCreateAppointment_SnapshotsPrice(t *testing.T) {
	store, _, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 45}))

	uc := NewCreateAppointment(store, dispatcher, nil)

	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		Name:      "Ali",
		Operation: "Corte",
		Date:      "2030-01-10",
		Time:      "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 45.0, ap.Price)
	assert.Equal(t, string(domain.StatusPending), ap.Status)

	// reprecificar não mexe no snapshot
	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 60}))

	reloaded, err := store.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.0, reloaded.Price)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	store, _, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 45}))

	uc := NewCreateAppointment(store, dispatcher, nil)

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		Name: "Ali", Operation: "Corte", Date: "2030-01-10", Time: "10:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Name: "Veli", Operation: "Corte", Date: "2030-01-10", Time: "10:15",
	})

	var conflict domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Ali", conflict.With.Name)

	// slot adjacente é livre
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Name: "Veli", Operation: "Corte", Date: "2030-01-10", Time: "10:30",
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_Validation(t *testing.T) {
	store, _, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 45}))

	uc := NewCreateAppointment(store, dispatcher, nil)

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		Operation: "Corte", Date: "2030-01-10", Time: "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "name_required"))

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Name: "Ali", Operation: "Luzes", Date: "2030-01-10", Time: "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "operation_not_found"))

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Name: "Ali", Operation: "Corte", Date: "2030-13-40", Time: "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestUpdateAppointment_ExcludesItselfFromConflict(t *testing.T) {
	store, _, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 45}))

	createUC := NewCreateAppointment(store, dispatcher, nil)
	updateUC := NewUpdateAppointment(store, dispatcher, nil)

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		Name: "Ali", Operation: "Corte", Date: "2030-01-10", Time: "10:00",
	})
	require.NoError(t, err)

	// manter o mesmo horário não conflita consigo mesmo
	updated, err := updateUC.Execute(ctx, UpdateAppointmentInput{
		ID: ap.ID, Name: "Ali Veli", Operation: "Corte", Date: "2030-01-10", Time: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", updated.Name)
}

func TestUpdateAppointment_CompletedIsImmutable(t *testing.T) {
	store, _, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertOperationPrice(ctx, &models.OperationPrice{Name: "Corte", Price: 45}))

	ap := seedPending(t, store, "Ali", "2024-01-10", "14:00")
	ap.Status = string(domain.StatusCompleted)
	require.NoError(t, store.UpdateAppointment(ctx, ap))

	updateUC := NewUpdateAppointment(store, dispatcher, nil)

	_, err := updateUC.Execute(ctx, UpdateAppointmentInput{
		ID: ap.ID, Name: "Ali", Operation: "Corte", Date: "2024-01-10", Time: "15:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDeleteAppointment_KeepsCompletedRecord(t *testing.T) {
	store, db, dispatcher := setupLifecycleTest(t)
	ctx := context.Background()

	ap := seedPending(t, store, "Ali", "2024-01-10", "14:00")

	completeUC := NewCompleteAppointment(store, dispatcher, nil)
	promoted, err := completeUC.Promote(ctx, ap)
	require.NoError(t, err)
	require.True(t, promoted)

	deleteUC := NewDeleteAppointment(store, dispatcher, nil)
	require.NoError(t, deleteUC.Execute(ctx, ap.ID))

	var count int64
	db.Model(&models.CompletedAppointment{}).
		Where("original_appointment_id = ?", ap.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}
