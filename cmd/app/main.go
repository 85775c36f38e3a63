package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	catalogfx "tago/cmd/fx/catalog_fx"
	controllersfx "tago/cmd/fx/controllers_fx"
	dbfx "tago/cmd/fx/db_fx"
	embeddingfx "tago/cmd/fx/embedding_fx"
	ingestfx "tago/cmd/fx/ingest_fx"
	logsfx "tago/cmd/fx/logs_fx"
	recommendfx "tago/cmd/fx/recommend_fx"
	reportfx "tago/cmd/fx/report_fx"
	"tago/internal/api/controllers"
	"tago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Invoke order matters: CSV ingest fills the tables the index build
	// reads, and the index must be warm before the server accepts traffic.
	app := fx.New(
		dbfx.Module,
		logsfx.Module,
		catalogfx.Module,
		ingestfx.Module,
		embeddingfx.Module,
		reportfx.Module,
		recommendfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendController *controllers.RecommendController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendController, catalogController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendController *controllers.RecommendController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController) {

	r.POST("/recommend", recommendController.RecommendHandler)

	productsGroup := r.Group("/products")
	productsGroup.GET("/:productId", catalogController.GetProductHandler)

	r.GET("/healthz", healthController.HealthHandler)
}
