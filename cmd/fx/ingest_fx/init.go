package ingestfx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tago/internal/ingest"
)

// Module loads the kiosk CSV exports at startup. Loads are idempotent, so a
// restart against an already-populated database is a no-op.
var Module = fx.Options(
	fx.Provide(provideLoader),
	fx.Invoke(runIngest),
)

func provideLoader(db *gorm.DB) *ingest.Loader {
	dir := os.Getenv("KIOSK_DATA_DIR")
	if dir == "" {
		dir = "csv"
	}
	return ingest.NewLoader(db, dir)
}

func runIngest(loader *ingest.Loader) error {
	return loader.LoadAll(context.Background())
}
