package services

import (
	"context"
	"log"

	"tago/internal/models/response_models"
	"tago/internal/repositories"
	"tago/pkg/utils"
)

type CatalogServiceInterface interface {
	GetProduct(ctx context.Context, productID string) (response_models.RankedProduct, error)
}

type CatalogService struct {
	productRepo repositories.ProductRepository
}

func NewCatalogService(productRepo repositories.ProductRepository) CatalogServiceInterface {
	return &CatalogService{productRepo: productRepo}
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (response_models.RankedProduct, error) {
	product, prices, err := s.productRepo.GetProductWithPrices(ctx, productID)
	if err != nil {
		log.Printf("Error fetching product %q: %v", productID, err)
		return response_models.RankedProduct{}, utils.ErrDatabaseError
	}
	if product == nil {
		return response_models.RankedProduct{}, utils.ErrProductNotFound
	}

	return buildRankedProduct(product, prices), nil
}
