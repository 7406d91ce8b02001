package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arashoo/Katena-project-management/pkg/application/services"
)

// AllocationHandler serves the claim totals across projects
type AllocationHandler struct {
	BaseHandler
	shop *services.Shop
}

func NewAllocationHandler(shop *services.Shop) *AllocationHandler {
	return &AllocationHandler{shop: shop}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *AllocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/allocations", h.Summary)
}

func (h *AllocationHandler) Summary(c *gin.Context) {
	summary, err := h.shop.AllocationSummary()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
