package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tago/internal/models/db_models"
)

type ProductRepository interface {
	// GetProductWithPrices returns the product row and all of its price rows
	// in insertion order. A missing product returns (nil, nil, nil), never an
	// error: dangling references are the caller's policy to handle.
	GetProductWithPrices(ctx context.Context, productID string) (*db_models.Product, []db_models.PriceOption, error)
	CountProducts(ctx context.Context) (int64, error)
	CountPrices(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProductWithPrices(ctx context.Context, productID string) (*db_models.Product, []db_models.PriceOption, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var prices []db_models.PriceOption
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&prices).Error; err != nil {
		return nil, nil, err
	}

	return &product, prices, nil
}

func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *productRepository) CountPrices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.PriceOption{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
