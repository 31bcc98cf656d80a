package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *GormStore) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormStore) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormStore) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *GormStore) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormStore) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *GormStore) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	// histórico não sofre cascade: o CompletedAppointment sobrevive
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Completed (histórico)
// --------------------------------------------------

func (r *GormStore) ListCompletedByDate(
	ctx context.Context,
	date string,
) ([]models.CompletedAppointment, error) {

	var recs []models.CompletedAppointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *GormStore) ListCompletedBetween(
	ctx context.Context,
	start string,
	end string,
) ([]models.CompletedAppointment, error) {

	var recs []models.CompletedAppointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, time ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// InsertCompletedIfAbsent usa ON CONFLICT DO NOTHING sobre o índice único
// de original_appointment_id. RowsAffected == 0 significa registro já
// existente — resultado esperado, não erro.
func (r *GormStore) InsertCompletedIfAbsent(
	ctx context.Context,
	rec *models.CompletedAppointment,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "original_appointment_id"}},
			DoNothing: true,
		}).
		Create(rec)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormStore) HasCompletedForOriginal(
	ctx context.Context,
	originalID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedAppointment{}).
		Where("original_appointment_id = ?", originalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormStore) HasCompletedWithDetails(
	ctx context.Context,
	date string,
	timeOfDay string,
	name string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedAppointment{}).
		Where("date = ? AND time = ? AND name = ?", date, timeOfDay, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *GormStore) SumCompletedEarnings(
	ctx context.Context,
	start string,
	end string,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedAppointment{}).
		Where("date >= ? AND date <= ?", start, end).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormStore) CountCompleted(
	ctx context.Context,
	start string,
	end string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedAppointment{}).
		Where("date >= ? AND date <= ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStore) CountCompletedOn(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedAppointment{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Price list
// --------------------------------------------------

func (r *GormStore) ListOperationPrices(
	ctx context.Context,
) ([]models.OperationPrice, error) {

	var prices []models.OperationPrice
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *GormStore) GetOperationPriceByName(
	ctx context.Context,
	name string,
) (*models.OperationPrice, error) {

	var op models.OperationPrice
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *GormStore) UpsertOperationPrice(
	ctx context.Context,
	op *models.OperationPrice,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).
		Create(op).Error
}

func (r *GormStore) DeleteOperationPrice(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.OperationPrice{}, id).Error
}

// Compile-time check
var _ domain.Store = (*GormStore)(nil)
