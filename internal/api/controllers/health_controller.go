package controllers

import (
	"github.com/gin-gonic/gin"

	"tago/internal/services"
	"tago/pkg/utils"
)

type HealthController struct {
	index services.IndexServiceInterface
}

func NewHealthController(index services.IndexServiceInterface) *HealthController {
	return &HealthController{index: index}
}

// HealthHandler reports liveness plus index coverage so operators can see
// when a corpus cap left the snapshot partial.
func (h *HealthController) HealthHandler(c *gin.Context) {
	snap, err := h.index.Snapshot()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"index_size":       len(snap.TripIDs),
		"vector_dim":       snap.Dim,
		"coverage_partial": snap.Partial,
	}, "ok")
}
