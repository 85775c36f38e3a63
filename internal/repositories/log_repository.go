package repositories

import (
	"context"

	"gorm.io/gorm"

	"tago/internal/models/db_models"
)

type LogRepository interface {
	GetAllLogs(ctx context.Context) ([]db_models.TravelLog, error)
	GetLogsByTripIDs(ctx context.Context, tripIDs []string) ([]db_models.TravelLog, error)
	CountLogs(ctx context.Context) (int64, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) GetAllLogs(ctx context.Context) ([]db_models.TravelLog, error) {
	var logs []db_models.TravelLog
	if err := r.db.WithContext(ctx).Order("id").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) GetLogsByTripIDs(ctx context.Context, tripIDs []string) ([]db_models.TravelLog, error) {
	if len(tripIDs) == 0 {
		return []db_models.TravelLog{}, nil
	}

	var logs []db_models.TravelLog
	if err := r.db.WithContext(ctx).Where("trip_id IN ?", tripIDs).Order("id").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) CountLogs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.TravelLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
