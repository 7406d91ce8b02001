package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/application/services"
)

// HistoryHandler serves the shop event log
type HistoryHandler struct {
	BaseHandler
	shop *services.Shop
}

func NewHistoryHandler(shop *services.Shop) *HistoryHandler {
	return &HistoryHandler{shop: shop}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *HistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.List)
}

// List returns events from position ?from= (default 0) onwards
func (h *HistoryHandler) List(c *gin.Context) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		h.BadRequest(c, "invalid from: "+c.Query("from"))
		return
	}
	history, err := h.shop.History(from)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewEventViews(from, history))
}
