package recommendfx

import (
	"go.uber.org/fx"

	"tago/internal/repositories"
	"tago/internal/services"
	"tago/pkg/memcache"
	"tago/pkg/utils"
)

var Module = fx.Provide(
	provideQueryCache,
	provideRecommendService)

func provideQueryCache() memcache.QueryVectorStore {
	return memcache.NewQueryVectors()
}

func provideRecommendService(
	logRepo repositories.LogRepository,
	productRepo repositories.ProductRepository,
	index services.IndexServiceInterface,
	embedClient utils.EmbeddingClientInterface,
	queryCache memcache.QueryVectorStore,
	report services.ReportServiceInterface,
) services.RecommendServiceInterface {
	return services.NewRecommendService(logRepo, productRepo, index, embedClient, queryCache, report)
}
