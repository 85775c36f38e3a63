package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"tago/internal/services"
	"tago/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (p *CatalogController) GetProductHandler(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Product ID is required")
		return
	}

	product, err := p.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}
