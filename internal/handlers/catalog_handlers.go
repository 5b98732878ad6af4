package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/services"
)

// CatalogHandlers serves the cross-entity item-type listing.
type CatalogHandlers struct {
	itemTypes services.ItemTypeService
}

func NewCatalogHandlers(itemTypes services.ItemTypeService) *CatalogHandlers {
	return &CatalogHandlers{itemTypes: itemTypes}
}

// ListItemTypesWithBrand handles GET /all_item_type_brand: every item type
// with its brand's name, keyed by item-type id. The ordering guarantee (name
// ascending, id tie-break) comes from the repository query; the JSON object
// itself is unordered by nature.
func (h *CatalogHandlers) ListItemTypesWithBrand(c echo.Context) error {
	rows, err := h.itemTypes.ListWithBrand(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	out := make(map[int64]any, len(rows))
	for _, row := range rows {
		out[row.ID] = row
	}
	return c.JSON(http.StatusOK, out)
}
