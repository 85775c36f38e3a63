package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"tago/internal/models/db_models"
	"tago/internal/models/request_models"
	"tago/internal/models/response_models"
	"tago/internal/repositories"
	"tago/pkg/memcache"
	"tago/pkg/utils"
)

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendationResponse, error)
}

type RecommendService struct {
	logRepo     repositories.LogRepository
	productRepo repositories.ProductRepository
	index       IndexServiceInterface
	embedClient utils.EmbeddingClientInterface
	queryCache  memcache.QueryVectorStore
	report      ReportServiceInterface
}

const queryVectorTTL = 10 * time.Minute

func NewRecommendService(
	logRepo repositories.LogRepository,
	productRepo repositories.ProductRepository,
	index IndexServiceInterface,
	embedClient utils.EmbeddingClientInterface,
	queryCache memcache.QueryVectorStore,
	report ReportServiceInterface,
) RecommendServiceInterface {
	return &RecommendService{
		logRepo:     logRepo,
		productRepo: productRepo,
		index:       index,
		embedClient: embedClient,
		queryCache:  queryCache,
		report:      report,
	}
}

// Recommend runs the pipeline end to end: render the intent, embed it, rank
// the log snapshot by similarity, filter the matched logs to the requested
// region, rank products by mean satisfaction and assemble the nested result.
//
// The region filter runs after the top-K narrowing, as the corpus pipeline
// always has: a region with few logs may come back empty even when matching
// logs exist outside the top-K window.
func (s *RecommendService) Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendationResponse, error) {
	snap, err := s.index.Snapshot()
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	queryText := FormatIntentSentence(IntentProfile{
		Place:             req.Region,
		Days:              strconv.Itoa(req.Days),
		CompanionRelation: strings.Join(req.CompanionRelations, ", "),
		CompanionAgeGroup: strings.Join(req.CompanionAgeGroups, ", "),
		Gender:            req.Gender,
		Age:               req.Age,
		Category:          strings.Join(req.Categories, ", "),
	})

	queryVec, err := s.queryVector(ctx, queryText)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}
	if len(queryVec) != snap.Dim {
		log.Printf("Query vector dim %d does not match snapshot dim %d", len(queryVec), snap.Dim)
		return response_models.RecommendationResponse{}, utils.ErrDimensionMismatch
	}

	tripIDs := TopKTripIDs(queryVec, snap, TopKLogs)

	logs, err := s.logRepo.GetLogsByTripIDs(ctx, tripIDs)
	if err != nil {
		log.Printf("Error fetching matched logs: %v", err)
		return response_models.RecommendationResponse{}, utils.ErrDatabaseError
	}

	ranked := RankProducts(logs, req.Region)
	if len(ranked) == 0 {
		// No log in the requested region survived the top-K window. That is
		// "no recommendation", not a failure.
		return response_models.RecommendationResponse{Products: []response_models.RankedProduct{}}, nil
	}

	products, err := s.assemble(ctx, ranked)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	report, err := s.report.CreateReport(ctx, products)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	return response_models.RecommendationResponse{
		Products: products,
		Report:   report,
	}, nil
}

func (s *RecommendService) queryVector(ctx context.Context, queryText string) ([]float32, error) {
	if vec, ok := s.queryCache.Get(queryText); ok {
		return vec, nil
	}

	embedded, err := s.embedClient.GetEmbedding(ctx, queryText)
	if err != nil {
		log.Printf("Error embedding kiosk query: %v", err)
		return nil, utils.ErrEmbeddingFailed
	}

	vec := embedded.Slice()
	s.queryCache.Set(queryText, vec, queryVectorTTL)
	return vec, nil
}

// assemble resolves each ranked product ID into its metadata and grouped
// price options, in ranking order. IDs with no product row are skipped
// silently: logs may reference products missing from the catalog.
func (s *RecommendService) assemble(ctx context.Context, ranked []ProductScore) ([]response_models.RankedProduct, error) {
	products := make([]response_models.RankedProduct, 0, len(ranked))

	for _, item := range ranked {
		product, prices, err := s.productRepo.GetProductWithPrices(ctx, item.ProductID)
		if err != nil {
			log.Printf("Error fetching product %q: %v", item.ProductID, err)
			return nil, utils.ErrDatabaseError
		}
		if product == nil {
			continue
		}
		products = append(products, buildRankedProduct(product, prices))
	}

	return products, nil
}

// buildRankedProduct groups price rows by option name, keeping the order in
// which option names first appear and the original fetch order of the price
// pairs inside each group.
func buildRankedProduct(product *db_models.Product, prices []db_models.PriceOption) response_models.RankedProduct {
	optIndex := make(map[string]int)
	var options []response_models.OptionOut

	for _, price := range prices {
		i, seen := optIndex[price.OptionName]
		if !seen {
			i = len(options)
			optIndex[price.OptionName] = i
			options = append(options, response_models.OptionOut{
				ProductID:  product.ProductID,
				OptionName: price.OptionName,
			})
		}
		options[i].Prices = append(options[i].Prices, response_models.PriceOut{
			AgeType:   price.AgeType,
			PriceText: price.PriceText,
		})
	}

	return response_models.RankedProduct{
		ProductID:   product.ProductID,
		Region:      product.Region,
		ProductName: product.ProductName,
		PlaceType:   product.PlaceType,
		Category:    product.Category,
		Options:     options,
	}
}
