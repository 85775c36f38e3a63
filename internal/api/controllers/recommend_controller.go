package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"tago/internal/models/request_models"
	"tago/internal/services"
	"tago/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

func (r *RecommendController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := r.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if len(result.Products) == 0 {
		utils.RespondSuccess(c, result, "No recommendation for this region")
		return
	}
	utils.RespondSuccess(c, result, "Recommendation created successfully")
}
