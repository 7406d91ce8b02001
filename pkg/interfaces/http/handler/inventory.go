package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/application/services"
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// InventoryHandler serves stock records
type InventoryHandler struct {
	BaseHandler
	shop *services.Shop
}

func NewInventoryHandler(shop *services.Shop) *InventoryHandler {
	return &InventoryHandler{shop: shop}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	inventory.GET("", h.Report)
	inventory.POST("", h.Add)
	inventory.GET("/low-stock", h.LowStock)
	inventory.PUT("/:category/:id", h.Update)
	inventory.DELETE("/:category/:id", h.Delete)
}

func (h *InventoryHandler) Report(c *gin.Context) {
	report, err := h.shop.InventoryReport()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	report, err := h.shop.InventoryReport()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report.LowStock)
}

func (h *InventoryHandler) Add(c *gin.Context) {
	var input dto.InventoryInput
	if !h.bindJSON(c, &input) {
		return
	}
	item, err := h.shop.AddInventory(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	var input dto.InventoryInput
	if !h.bindJSON(c, &input) {
		return
	}
	item, err := h.shop.UpdateInventory(c.Request.Context(), category, c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	if err := h.shop.DeleteInventory(c.Request.Context(), category, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *InventoryHandler) category(c *gin.Context) (entities.Category, bool) {
	category, err := entities.ParseCategory(c.Param("category"))
	if err != nil {
		h.HandleError(c, err)
		return "", false
	}
	return category, true
}
