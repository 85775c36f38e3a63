// cmd/fx/embedding_fx/init.go
package embeddingfx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tago/internal/repositories"
	"tago/internal/services"
	"tago/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		ProvideEmbeddingClient,
		provideLogEmbeddingRepo,
		ProvideIndexService,
	),
	// Warm the snapshot before the server starts taking traffic. Building is
	// a one-time cost on first boot; afterwards this is a plain load.
	fx.Invoke(warmIndex),
)

// EmbeddingConfig holds configuration for embedding clients
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideEmbeddingClient creates an embedding client based on environment variables
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getEmbeddingConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.Model)

	client, err := utils.NewEmbeddingClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return client, nil
}

func provideLogEmbeddingRepo(db *gorm.DB) repositories.LogEmbeddingRepository {
	return repositories.NewLogEmbeddingRepository(db)
}

func ProvideIndexService(
	logRepo repositories.LogRepository,
	embRepo repositories.LogEmbeddingRepository,
	embedClient utils.EmbeddingClientInterface,
) services.IndexServiceInterface {
	limit := 0
	if raw := os.Getenv("EMBED_CORPUS_LIMIT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Printf("Ignoring invalid EMBED_CORPUS_LIMIT=%q", raw)
		} else {
			limit = parsed
		}
	}
	return services.NewIndexService(logRepo, embRepo, embedClient, limit)
}

func warmIndex(index services.IndexServiceInterface) error {
	return index.EnsureLoaded(context.Background())
}

// getEmbeddingConfig reads configuration from environment variables
func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "openai")

	var apiKey string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return EmbeddingConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("EMBEDDING_MODEL"),
	}
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
