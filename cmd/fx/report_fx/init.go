package reportfx

import (
	"fmt"
	"os"

	"go.uber.org/fx"

	"tago/internal/services"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService() (services.ReportServiceInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for report generation")
	}
	return services.NewGeminiReportService(apiKey, os.Getenv("REPORT_MODEL"))
}
