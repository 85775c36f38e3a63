package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tago/internal/models/db_models"
	"tago/pkg/utils"
)

func TestCatalogService_GetProduct(t *testing.T) {
	repo := &fakeProductRepo{
		products: map[string]*db_models.Product{
			"P1": {ProductID: "P1", Region: "서울", ProductName: "고궁 야간 투어", PlaceType: "역사유적지", Category: "역사"},
		},
		prices: map[string][]db_models.PriceOption{
			"P1": {
				{ProductID: "P1", OptionName: "성인", AgeType: "성인", PriceText: "20,000원"},
				{ProductID: "P1", OptionName: "아동", AgeType: "아동", PriceText: "10,000원"},
			},
		},
	}
	svc := NewCatalogService(repo)

	got, err := svc.GetProduct(context.Background(), "P1")

	require.NoError(t, err)
	assert.Equal(t, "P1", got.ProductID)
	assert.Equal(t, "고궁 야간 투어", got.ProductName)
	require.Len(t, got.Options, 2)
	assert.Equal(t, "성인", got.Options[0].OptionName)
}

func TestCatalogService_ProductWithoutPrices(t *testing.T) {
	repo := &fakeProductRepo{
		products: map[string]*db_models.Product{
			"P2": {ProductID: "P2", Region: "부산", ProductName: "해운대 요트", PlaceType: "해변", Category: "해양"},
		},
	}
	svc := NewCatalogService(repo)

	got, err := svc.GetProduct(context.Background(), "P2")

	require.NoError(t, err)
	assert.Equal(t, "P2", got.ProductID)
	assert.Empty(t, got.Options)
}

func TestCatalogService_UnknownProduct(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{})

	_, err := svc.GetProduct(context.Background(), "P404")

	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}
