package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tago/internal/repositories"
	"tago/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideCatalogService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCatalogService(productRepo repositories.ProductRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo)
}
