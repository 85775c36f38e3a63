package controllersfx

import (
	"go.uber.org/fx"

	"tago/internal/api/controllers"
	"tago/internal/services"
)

var Module = fx.Provide(
	provideRecommendController,
	provideCatalogController,
	provideHealthController)

func provideRecommendController(recommendService services.RecommendServiceInterface) *controllers.RecommendController {
	return controllers.NewRecommendController(recommendService)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}

func provideHealthController(index services.IndexServiceInterface) *controllers.HealthController {
	return controllers.NewHealthController(index)
}
