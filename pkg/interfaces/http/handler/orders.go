package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/application/services"
)

// OrderHandler serves the order board
type OrderHandler struct {
	BaseHandler
	shop *services.Shop
}

func NewOrderHandler(shop *services.Shop) *OrderHandler {
	return &OrderHandler{shop: shop}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.GET("", h.Board)
	orders.POST("/:id/advance", h.Advance)
	orders.DELETE("/:id", h.Delete)
}

func (h *OrderHandler) Board(c *gin.Context) {
	board, err := h.shop.OrderBoard()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, board)
}

// Advance moves an order to {"status": ...}, or one stage forward with no body
func (h *OrderHandler) Advance(c *gin.Context) {
	var input dto.AdvanceInput
	if !h.bindOptionalJSON(c, &input) {
		return
	}
	order, err := h.shop.AdvanceOrder(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.shop.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
