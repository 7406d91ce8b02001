package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/application/services"
)

// ProjectHandler serves projects, their steps and requirements
type ProjectHandler struct {
	BaseHandler
	shop *services.Shop
}

func NewProjectHandler(shop *services.Shop) *ProjectHandler {
	return &ProjectHandler{shop: shop}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.GET("", h.List)
	projects.POST("", h.Create)
	projects.GET("/:id", h.Get)
	projects.PATCH("/:id", h.Rename)
	projects.DELETE("/:id", h.Delete)
	projects.POST("/:id/steps/:step/toggle", h.ToggleStep)
	projects.POST("/:id/steps/:step/files", h.AttachFile)
	projects.DELETE("/:id/steps/:step/files/:fid", h.DeleteFile)

	reqs := projects.Group("/:id/requirements")
	reqs.GET("", h.Requirements)
	reqs.POST("", h.AddRequirement)
	reqs.DELETE("/:rid", h.DeleteRequirement)
	reqs.GET("/:rid/availability", h.Availability)
	reqs.POST("/:rid/lock", h.Lock)
	reqs.DELETE("/:rid/lock", h.Release)
	reqs.POST("/:rid/order", h.CreateOrder)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.shop.ListProjects()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.shop.GetProject(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var input dto.ProjectInput
	if !h.bindJSON(c, &input) {
		return
	}
	project, err := h.shop.CreateProject(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, project)
}

func (h *ProjectHandler) Rename(c *gin.Context) {
	var input dto.ProjectInput
	if !h.bindJSON(c, &input) {
		return
	}
	project, err := h.shop.RenameProject(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.shop.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProjectHandler) ToggleStep(c *gin.Context) {
	stepID, ok := h.intParam(c, "step")
	if !ok {
		return
	}
	project, err := h.shop.ToggleStep(c.Request.Context(), c.Param("id"), stepID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) AttachFile(c *gin.Context) {
	stepID, ok := h.intParam(c, "step")
	if !ok {
		return
	}
	var input dto.FileInput
	if !h.bindJSON(c, &input) {
		return
	}
	project, err := h.shop.AttachFile(c.Request.Context(), c.Param("id"), stepID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, project)
}

func (h *ProjectHandler) DeleteFile(c *gin.Context) {
	stepID, ok := h.intParam(c, "step")
	if !ok {
		return
	}
	project, err := h.shop.DeleteFile(c.Request.Context(), c.Param("id"), stepID, c.Param("fid"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

// Requirements returns every requirement with fresh availability and order badges
func (h *ProjectHandler) Requirements(c *gin.Context) {
	page, err := h.shop.RequirementViews(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

func (h *ProjectHandler) AddRequirement(c *gin.Context) {
	var input dto.RequirementInput
	if !h.bindJSON(c, &input) {
		return
	}
	req, err := h.shop.AddRequirement(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, req)
}

func (h *ProjectHandler) DeleteRequirement(c *gin.Context) {
	if err := h.shop.DeleteRequirement(c.Request.Context(), c.Param("id"), c.Param("rid")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProjectHandler) Availability(c *gin.Context) {
	result, err := h.shop.CheckAvailability(c.Param("id"), c.Param("rid"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ProjectHandler) Lock(c *gin.Context) {
	var input dto.LockInput
	if !h.bindJSON(c, &input) {
		return
	}
	req, err := h.shop.LockAllocation(c.Request.Context(), c.Param("id"), c.Param("rid"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

func (h *ProjectHandler) Release(c *gin.Context) {
	req, err := h.shop.ReleaseAllocation(c.Request.Context(), c.Param("id"), c.Param("rid"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// CreateOrder raises an order for the requirement's current shortage
func (h *ProjectHandler) CreateOrder(c *gin.Context) {
	order, err := h.shop.CreateOrder(c.Request.Context(), c.Param("id"), c.Param("rid"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
