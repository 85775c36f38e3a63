package repositories

import (
	"context"

	"gorm.io/gorm"

	"tago/internal/infra"
	"tago/internal/models/db_models"
)

type LogEmbeddingRepository interface {
	Count(ctx context.Context) (int64, error)
	// ListAll returns every snapshot row ordered by insertion, which is the
	// index order the similarity ranker ties against.
	ListAll(ctx context.Context) ([]db_models.LogEmbedding, error)
	// ReplaceAll swaps the whole snapshot in one transaction so readers never
	// observe a half-built index.
	ReplaceAll(ctx context.Context, rows []db_models.LogEmbedding) error
}

type logEmbeddingRepository struct {
	db *gorm.DB
}

func NewLogEmbeddingRepository(db *gorm.DB) LogEmbeddingRepository {
	return &logEmbeddingRepository{db: db}
}

func (r *logEmbeddingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.LogEmbedding{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *logEmbeddingRepository) ListAll(ctx context.Context) ([]db_models.LogEmbedding, error) {
	var rows []db_models.LogEmbedding
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *logEmbeddingRepository) ReplaceAll(ctx context.Context, rows []db_models.LogEmbedding) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { infra.ReleaseTransaction(tx, err) }()

	if err = tx.Where("1 = 1").Delete(&db_models.LogEmbedding{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	err = tx.CreateInBatches(rows, 500).Error
	return err
}
