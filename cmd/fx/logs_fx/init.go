package logsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tago/internal/repositories"
)

var Module = fx.Provide(
	provideLogRepo)

func provideLogRepo(db *gorm.DB) repositories.LogRepository {
	return repositories.NewLogRepository(db)
}
