package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tago/internal/models/response_models"
	"tago/pkg/utils"
)

type ReportServiceInterface interface {
	// CreateReport writes a short narrative summary of the recommended
	// products for the kiosk result screen. The content is opaque to the
	// pipeline; callers only forward it.
	CreateReport(ctx context.Context, products []response_models.RankedProduct) (string, error)
}

type GeminiReportService struct {
	client *genai.Client
	model  string
}

const reportCallTimeout = 30 * time.Second

func NewGeminiReportService(apiKey, model string) (ReportServiceInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiReportService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiReportService) CreateReport(ctx context.Context, products []response_models.RankedProduct) (string, error) {
	if len(products) == 0 {
		return "", nil
	}

	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.3)
	model.SetTopP(0.5)
	model.SetMaxOutputTokens(1024)

	ctx, cancel := context.WithTimeout(ctx, reportCallTimeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(products)))
	if err != nil {
		log.Printf("Gemini report call failed: %v", err)
		return "", utils.ErrReportFailed
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Println("Gemini returned no report content")
		return "", utils.ErrReportFailed
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		log.Printf("Gemini returned non-text report part: %T", resp.Candidates[0].Content.Parts[0])
		return "", utils.ErrReportFailed
	}
	return strings.TrimSpace(string(text)), nil
}

func (s *GeminiReportService) buildPrompt(products []response_models.RankedProduct) string {
	var b strings.Builder
	b.WriteString("다음은 키오스크 이용자에게 추천된 여행 상품 목록이다.\n\n")
	for i, p := range products {
		b.WriteString(fmt.Sprintf("%d. %s (%s, %s, 테마: %s)\n", i+1, p.ProductName, p.Region, p.PlaceType, p.Category))
		for _, opt := range p.Options {
			b.WriteString(fmt.Sprintf("   - 옵션 %s", opt.OptionName))
			for _, price := range opt.Prices {
				b.WriteString(fmt.Sprintf(" / %s %s", price.AgeType, price.PriceText))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n위 상품들을 여행자에게 소개하는 짧은 추천 리포트를 한국어로 작성하라. ")
	b.WriteString("상품별 특징과 가격대를 간단히 요약하고, 목록에 없는 상품은 언급하지 마라.")
	return b.String()
}
