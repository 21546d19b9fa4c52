package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ekthaa/internal/service"
)

// CatalogHandler serves the category tables behind the pickers.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Categories handles GET /api/v1/catalog/:table/categories
// @Summary      List level-1 categories
// @Tags         catalog
// @Produce      json
// @Param        table path string true "business or inventory"
// @Success      200 {object} APIResponse{data=[]catalog.Level1,meta=Meta}
// @Failure      404 {object} APIResponse
// @Router       /catalog/{table}/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	cats, err := h.catalogService.Categories(c.Param("table"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, cats, len(cats))
}

// Options handles GET /api/v1/catalog/:table/categories/:id/options
func (h *CatalogHandler) Options(c *gin.Context) {
	opts, err := h.catalogService.Options(c.Param("table"), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, opts, len(opts))
}

// Search handles GET /api/v1/catalog/:table/search?q=
// @Summary      Search categories and subcategories
// @Tags         catalog
// @Produce      json
// @Param        table path string true "business or inventory"
// @Param        q query string false "Case-insensitive substring"
// @Success      200 {object} APIResponse{data=[]catalog.SearchResult,meta=Meta}
// @Router       /catalog/{table}/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	results, err := h.catalogService.Search(c.Param("table"), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, results, len(results))
}

// Select handles POST /api/v1/catalog/:table/selection
// @Summary      Apply a picker action to a selection
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        table path string true "business or inventory"
// @Param        body body service.SelectionRequest true "Current selection and action"
// @Success      200 {object} APIResponse{data=service.SelectionResult}
// @Failure      400 {object} APIResponse
// @Router       /catalog/{table}/selection [post]
func (h *CatalogHandler) Select(c *gin.Context) {
	var req service.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "action is required")
		return
	}

	res, err := h.catalogService.Select(c.Param("table"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// Units handles GET /api/v1/catalog/units
func (h *CatalogHandler) Units(c *gin.Context) {
	RespondOK(c, h.catalogService.Units())
}
